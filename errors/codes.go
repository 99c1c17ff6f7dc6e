package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Range errors
const (
	// ErrCodeOutOfRange indicates a count or index outside the accepted range.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Sequence errors
const (
	// ErrCodeEmptySequence indicates an operation that needs at least one
	// element was evaluated over an empty sequence.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeInvalidOperation indicates an operator was applied to a wrapper
	// that does not support it.
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	// ErrCodeUnsupportedValue indicates a value a comparer cannot handle.
	ErrCodeUnsupportedValue ErrorCode = "UNSUPPORTED_VALUE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

var codeCategories = map[ErrorCode]string{
	ErrCodeOutOfRange:       "range",
	ErrCodeEmptySequence:    "empty-sequence",
	ErrCodeInvalidOperation: "invalid-operation",
	ErrCodeUnsupportedValue: "invalid-operation",
	ErrCodeInvalidInput:     "validation",
}

// Category returns the taxonomy bucket an error code belongs to.
func Category(code ErrorCode) string {
	if c, ok := codeCategories[code]; ok {
		return c
	}
	return "unknown"
}
