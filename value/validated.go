package value

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/stringx"
)

// Rule names a string-backed value type and decides which
// trimmed strings are acceptable for it.
//
// Rules are stateless; they are used through their zero value.
type Rule interface {
	Name() string
	Validate(trimmed string) bool
}

// CaseInsensitiveRule is implemented by rules whose values
// compare equal regardless of case.
type CaseInsensitiveRule interface {
	Rule
	CaseInsensitive() bool
}

// Validated is an immutable, trimmed string that satisfies the rule R.
// The zero value is the empty value.
//
// Validated is intended to be embedded by concrete domain types:
//
//	type RoutingNumber struct{ value.Validated[routingRule] }
type Validated[R Rule] struct {
	raw string
}

// New trims raw and validates it against R.
// It returns an invalid-value error naming R when validation fails.
func New[R Rule](raw string) (Validated[R], error) {
	v := NewUnchecked[R](raw)

	var rule R

	if !rule.Validate(v.raw) {
		return Validated[R]{}, errors.NewInvalidValue(rule.Name(), v.raw)
	}

	return v, nil
}

// NewUnchecked trims raw and skips validation.
// It is meant for values already known to be valid, e.g. read back
// from trusted storage.
func NewUnchecked[R Rule](raw string) Validated[R] {
	return Validated[R]{raw: strings.TrimSpace(raw)}
}

// MustNew returns v if err is nil and panics otherwise.
func MustNew[R Rule](v Validated[R], err error) Validated[R] {
	if err != nil {
		panic(err)
	}

	return v
}

// Empty returns the empty value of R.
func Empty[R Rule]() Validated[R] {
	return Validated[R]{}
}

// TypeName returns the name of the rule R.
func TypeName[R Rule]() string {
	var rule R

	return rule.Name()
}

// Raw returns the stored, unmasked value.
func (v Validated[R]) Raw() string {
	return v.raw
}

// String returns the stored value.
func (v Validated[R]) String() string {
	return v.raw
}

// IsEmpty reports whether the stored value is the empty string.
func (v Validated[R]) IsEmpty() bool {
	return v.raw == ""
}

// Equal compares the stored values, folding case when R
// is a CaseInsensitiveRule.
func (v Validated[R]) Equal(x Validated[R]) bool {
	var rule R

	if ci, ok := any(rule).(CaseInsensitiveRule); ok && ci.CaseInsensitive() {
		return strings.EqualFold(v.raw, x.raw)
	}

	return v.raw == x.raw
}

// Secured returns the value masked so that only the last
// visible characters show, padded with pad up to total characters.
func (v Validated[R]) Secured(visible, total int, pad rune) (string, error) {
	return stringx.Mask(v.raw, visible, total, pad)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (v Validated[R]) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The text is validated against R.
func (v *Validated[R]) UnmarshalText(text []byte) error {
	parsed, err := New[R](string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// Value defines how the value is stored in the database.
func (v Validated[R]) Value() (driver.Value, error) {
	return v.raw, nil
}

// Scan defines how the value is read from the database.
// NULL reads as the empty value.
func (v *Validated[R]) Scan(src any) error {
	switch t := src.(type) {
	case string:
		return v.UnmarshalText([]byte(t))

	case []byte:
		return v.UnmarshalText(t)

	case nil:
		*v = Validated[R]{}

		return nil

	default:
		return fmt.Errorf(
			"%w: could not scan type %T into %s",
			errors.ErrInvalidValue,
			t,
			TypeName[R](),
		)
	}
}

// Compile time interface checks for a representative instantiation.
type anyRule struct{}

func (anyRule) Name() string           { return "any" }
func (anyRule) Validate(_ string) bool { return true }

var (
	// ensure Validated implements valuer and scanner interface.
	_ sql.Scanner   = (*Validated[anyRule])(nil)
	_ driver.Valuer = (*Validated[anyRule])(nil)

	// ensure Validated implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = (*Validated[anyRule])(nil)
	_ encoding.TextUnmarshaler = (*Validated[anyRule])(nil)

	_ fmt.Stringer = Validated[anyRule]{}
)
