package errors

import (
	"net/http"

	"bakery/internal/errors"
)

// Kind classifies an AppError for presentation.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindIntegrity  Kind = "integrity"
	KindBusiness   Kind = "business"
	KindAuth       Kind = "auth"
	KindInternal   Kind = "internal"
)

// Persistent reports whether notices of this kind need explicit dismissal.
// Conflicts, integrity violations and business rule violations usually ask
// the user to act.
func (k Kind) Persistent() bool {
	switch k {
	case KindConflict, KindIntegrity, KindBusiness:
		return true
	default:
		return false
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
	Persistent() bool // Notice must be dismissed explicitly
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewUserFriendlyError creates a business rule violation carrying message as
// the text shown to the user.
func NewUserFriendlyError(message string) *BaseError {
	return NewBaseError(KindBusiness, http.StatusUnprocessableEntity, codeUserFriendly, message, "")
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors of the same code so wrapped copies compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && (t.errorCode != codeUserFriendly || e.message == t.message)
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }
func (e *BaseError) Kind() Kind        { return e.kind }
func (e *BaseError) Persistent() bool  { return e.kind.Persistent() }

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

const codeUserFriendly = "USER_FRIENDLY_DATA"

// Predefined error types
var (
	ErrEntityNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"The selected entity was not found.",
		"",
	)

	ErrRequiredFieldsMissing = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"REQUIRED_FIELDS_MISSING",
		"Please fill out all required fields before proceeding.",
		"",
	)

	ErrConcurrentUpdate = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"CONCURRENT_UPDATE",
		"Somebody else might have updated the data. Please refresh and try again.",
		"",
	)

	ErrOperationPreventedByReferences = NewBaseError(
		KindIntegrity,
		http.StatusConflict,
		"OPERATION_PREVENTED_BY_REFERENCES",
		"The operation can not be executed as there are references to entity in the database.",
		"",
	)

	// Business rules
	ErrDuplicateProductName = NewUserFriendlyError(
		"There is already a product with that name. Please select a unique name for the product.",
	)
	ErrDuplicatePickupLocationName = NewUserFriendlyError(
		"There is already a pickup location with that name. Please select a unique name for the location.",
	)
	ErrDuplicateUserEmail = NewUserFriendlyError(
		"There is already a user with that email. Please select a unique email for the user.",
	)
	ErrModifyLockedUser = NewUserFriendlyError(
		"User has been locked and cannot be modified or deleted",
	)
	ErrDeleteOwnAccount = NewUserFriendlyError(
		"You cannot delete your own account",
	)

	// Authentication
	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password.",
		"",
	)

	ErrAccountLocked = NewBaseError(
		KindAuth,
		http.StatusForbidden,
		"ACCOUNT_LOCKED",
		"This account has been locked.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Please sign in to continue.",
		"",
	)

	ErrForbidden = NewBaseError(
		KindAuth,
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have access to this resource.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password could not be processed.",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong. Please try again later.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "The data could not be saved. Please try again." }
func (e *DatabaseExecuteError) Details() string   { return e.details }
func (e *DatabaseExecuteError) Kind() Kind        { return KindInternal }
func (e *DatabaseExecuteError) Persistent() bool  { return false }

// AsAppError extracts the AppError from err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
