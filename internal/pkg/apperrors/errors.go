package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Teacher registry errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
)

// Workbook import errors
var (
	// ErrWorkbookDecode marks a workbook whose bytes could not be read at
	// all; the collection stays untouched when it occurs.
	ErrWorkbookDecode = errors.New("unable to decode workbook")
	// ErrEmptyWorkbook marks a readable workbook that contained no usable
	// sheet, distinct from a decode failure.
	ErrEmptyWorkbook = errors.New("workbook contains no usable sheet")
	// ErrNoDataRows marks processed sheets that carried only header rows.
	ErrNoDataRows = errors.New("workbook sheets contain no data rows")
)

// CustomError carries an underlying sentinel plus a human-readable message
// for the API layer.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// Unwrap exposes the sentinel for errors.Is matching
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
