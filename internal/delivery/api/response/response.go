package response

import (
	"net/http"

	deliverycontext "bakery/internal/delivery/context"
	domainerrors "bakery/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every API response
type Response struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`    // HTTP status code
	Message string                  `json:"message"` // User-friendly message
	Data    any                     `json:"data,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo               `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// PageData wraps one page of a list result
type PageData[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// Error returns an error response. Details are dropped for 5xx and auth errors.
func Error(c echo.Context, statusCode int, info *domainerrors.ErrorInfo) error {
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = nil
	}
	if info.Message == "" {
		info.Message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: info.Message,
		Error:   info,
		Meta:    meta(c),
	})
}

// AppError renders a domain error as a notice
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	info := &domainerrors.ErrorInfo{
		Code:       appErr.ErrorCode(),
		Message:    appErr.Message(),
		Persistent: appErr.Persistent(),
	}
	if details := appErr.Details(); details != "" {
		info.Details = details
	}

	return Error(c, appErr.HTTPCode(), info)
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, &domainerrors.ErrorInfo{Code: errorCode, Message: message})
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, &domainerrors.ErrorInfo{Code: errorCode, Message: message, Details: details})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, &domainerrors.ErrorInfo{Code: errorCode, Message: message})
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, &domainerrors.ErrorInfo{Code: errorCode, Message: message})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, &domainerrors.ErrorInfo{Code: errorCode, Message: message})
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.RequestID(c)}
}
