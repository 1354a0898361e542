package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateAccount = errors.New("email or student ID already exists")
	ErrInvalidRole      = errors.New("invalid role")
)

// Catalog errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department already exists")
	ErrCourseNotFound          = errors.New("course not found")
	ErrCourseCodeExists        = errors.New("course code already exists")
)

// Material errors
var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrNotPDF           = errors.New("only PDF files are allowed")
	ErrFileNotFound     = errors.New("file not found")
)

// Password reset errors
var (
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// CustomError represents application-specific errors with a caller-facing
// message layered over a sentinel.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewValidationError creates a 400-class error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a 404-class error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a 403-class error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}
