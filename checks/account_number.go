package checks

import (
	"github.com/eagleviewent/go-utilities/value"
)

// AccountNumber is a 6 to 17 digit bank account number.
// The zero value is the empty account number.
type AccountNumber struct {
	value.Validated[accountRule]
}

// NewAccountNumber trims and validates raw.
func NewAccountNumber(raw string) (AccountNumber, error) {
	v, err := value.New[accountRule](raw)
	if err != nil {
		return AccountNumber{}, err
	}

	return AccountNumber{v}, nil
}

// MustAccountNumber returns a if err is nil and panics otherwise.
func MustAccountNumber(a AccountNumber, err error) AccountNumber {
	if err != nil {
		panic(err)
	}

	return a
}

// Equal reports whether both account numbers hold the same digits.
func (a AccountNumber) Equal(x AccountNumber) bool {
	return a.Validated.Equal(x.Validated)
}

// Secured returns the same account number with masked rendering.
func (a AccountNumber) Secured() AccountNumberSecured {
	return AccountNumberSecured{a.Validated}
}

// AccountNumberSecured is an AccountNumber that renders and serializes
// masked, e.g. "****6789".
type AccountNumberSecured struct {
	value.Validated[accountRule]
}

// NewAccountNumberSecured trims and validates raw as an AccountNumber.
func NewAccountNumberSecured(raw string) (AccountNumberSecured, error) {
	a, err := NewAccountNumber(raw)
	if err != nil {
		return AccountNumberSecured{}, err
	}

	return a.Secured(), nil
}

// Equal reports whether both account numbers hold the same digits.
func (a AccountNumberSecured) Equal(x AccountNumberSecured) bool {
	return a.Validated.Equal(x.Validated)
}

// AccountNumber returns the unmasked account number.
func (a AccountNumberSecured) AccountNumber() AccountNumber {
	return AccountNumber{a.Validated}
}

// String returns the masked account number.
func (a AccountNumberSecured) String() string {
	return maskSecured(a.Raw())
}

// MarshalText implements the encoding.TextMarshaler interface
// with the masked form.
func (a AccountNumberSecured) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// CheckNumber is a check serial number of at most five digits.
// The zero value is the empty check number.
type CheckNumber struct {
	value.Validated[checkRule]
}

// NewCheckNumber trims and validates raw.
func NewCheckNumber(raw string) (CheckNumber, error) {
	v, err := value.New[checkRule](raw)
	if err != nil {
		return CheckNumber{}, err
	}

	return CheckNumber{v}, nil
}

// Equal reports whether both check numbers hold the same digits.
func (c CheckNumber) Equal(x CheckNumber) bool {
	return c.Validated.Equal(x.Validated)
}
