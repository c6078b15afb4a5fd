package errors

import (
	"errors"
	"fmt"
)

// promote standard library errors package functions.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
	New  = errors.New
)

// ErrorType classifies an Error.
type ErrorType string

// Available error types.
const (
	ErrorTypeInvalidValue     ErrorType = "invalid-value"
	ErrorTypeCurrencyMismatch ErrorType = "currency-mismatch"
	ErrorTypeInvalidOperation ErrorType = "invalid-operation"
	ErrorTypeInvalidArgument  ErrorType = "invalid-argument"
	ErrorTypeNotFound         ErrorType = "not-found"
	ErrorTypeAlreadyExists    ErrorType = "already-exists"
	ErrorTypeInternalError    ErrorType = "internal"
)

// Sentinel errors, one per type. Any *Error matches the sentinel of
// its type when compared with Is.
var (
	ErrInvalidValue     = &Error{Type: ErrorTypeInvalidValue, Message: "invalid value"}
	ErrCurrencyMismatch = &Error{Type: ErrorTypeCurrencyMismatch, Message: "currency mismatch"}
	ErrInvalidOperation = &Error{Type: ErrorTypeInvalidOperation, Message: "invalid operation"}
	ErrInvalidArgument  = &Error{Type: ErrorTypeInvalidArgument, Message: "invalid argument"}
	ErrNotFound         = &Error{Type: ErrorTypeNotFound, Message: "not found"}
	ErrAlreadyExists    = &Error{Type: ErrorTypeAlreadyExists, Message: "already exists"}
	ErrInternal         = &Error{Type: ErrorTypeInternalError, Message: "internal error"}
)

// Error object.
type Error struct {
	Type    ErrorType
	Message string

	// InternalMessage carries the text of the underlying cause, if any.
	// It is not part of Error().
	InternalMessage string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Type)
	}

	return e.Message
}

// Is reports whether target is an *Error of the same type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Type == e.Type
}

// IsErrorType checks if the error is of the given type.
func IsErrorType(err error, typ ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == typ
	}

	return false
}

// NewInvalidValue returns an invalid-value error naming
// the type that rejected value.
func NewInvalidValue(typeName, value string) *Error {
	return &Error{
		Type:    ErrorTypeInvalidValue,
		Message: fmt.Sprintf("invalid value for %s: '%s'", typeName, value),
	}
}

// NewCurrencyMismatch returns a currency-mismatch error naming both currencies.
func NewCurrencyMismatch(left, right fmt.Stringer) *Error {
	return &Error{
		Type: ErrorTypeCurrencyMismatch,
		Message: fmt.Sprintf(
			"cannot operate on different currencies: %s vs %s",
			left,
			right,
		),
	}
}

// NewInvalidOperation returns an invalid-operation error.
func NewInvalidOperation(format string, args ...any) *Error {
	return &Error{
		Type:    ErrorTypeInvalidOperation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewInvalidArgument returns an invalid-argument error.
func NewInvalidArgument(format string, args ...any) *Error {
	return &Error{
		Type:    ErrorTypeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}
