package money

import (
	"github.com/eagleviewent/go-utilities/errors"
)

var (
	// ErrInvalidValue is returned when a money value or currency
	// cannot be parsed.
	ErrInvalidValue = errors.ErrInvalidValue

	// ErrCurrencyMismatch is returned when two amounts of different
	// currencies are combined or compared.
	ErrCurrencyMismatch = errors.ErrCurrencyMismatch

	// ErrInvalidOperation is returned on division by zero.
	ErrInvalidOperation = errors.ErrInvalidOperation

	// ErrInvalidArgument is returned when splitting into fewer
	// than one part.
	ErrInvalidArgument = errors.ErrInvalidArgument
)
