package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code       string `json:"code"`              // Business error code, e.g., "ENTITY_NOT_FOUND"
	Message    string `json:"message"`           // User-friendly error message
	Persistent bool   `json:"persistent"`        // Notice must be dismissed explicitly
	Details    any    `json:"details,omitempty"` // Detailed error information (optional)
}
