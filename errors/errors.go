package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Sentinels for errors.Is matching. Any *AppError with the same code matches.
var (
	ErrOutOfRange       = &AppError{Code: ErrCodeOutOfRange, Message: "out of range"}
	ErrEmptySequence    = &AppError{Code: ErrCodeEmptySequence, Message: "sequence contains no elements"}
	ErrInvalidOperation = &AppError{Code: ErrCodeInvalidOperation, Message: "invalid operation"}
	ErrUnsupportedValue = &AppError{Code: ErrCodeUnsupportedValue, Message: "unsupported value"}
	ErrInvalidInput     = &AppError{Code: ErrCodeInvalidInput, Message: "invalid input"}
)

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// OutOfRange reports a count or index that falls outside the valid range.
func OutOfRange(param string, value int) *AppError {
	return &AppError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("%s is out of range: %d", param, value),
		Details: map[string]any{"param": param, "value": value},
	}
}

// EmptySequence reports that op needs at least one element.
func EmptySequence(op string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptySequence,
		Message: fmt.Sprintf("%s: sequence contains no elements", op),
		Details: map[string]any{"operation": op},
	}
}

// InvalidOperation reports an operator applied where it is not allowed.
func InvalidOperation(op, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidOperation,
		Message: fmt.Sprintf("%s: %s", op, reason),
		Details: map[string]any{"operation": op},
	}
}

// Unsupported reports a value that a comparer cannot hash or compare.
func Unsupported(value any) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedValue,
		Message: fmt.Sprintf("value of type %T is not supported by the comparer", value),
		Details: map[string]any{"type": fmt.Sprintf("%T", value)},
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// --- Inspection ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
