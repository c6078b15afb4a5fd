package checks

import (
	"strings"

	"github.com/eagleviewent/go-utilities/stringx"
	"github.com/eagleviewent/go-utilities/value"
)

// RoutingNumber is a nine digit ABA routing transit number.
// The zero value is the empty routing number.
type RoutingNumber struct {
	value.Validated[routingRule]
}

// NewRoutingNumber trims and validates raw. A non-empty value must be
// nine digits whose 7-3-9 weighted sum is a multiple of ten.
func NewRoutingNumber(raw string) (RoutingNumber, error) {
	v, err := value.New[routingRule](raw)
	if err != nil {
		return RoutingNumber{}, err
	}

	return RoutingNumber{v}, nil
}

// MustRoutingNumber returns r if err is nil and panics otherwise.
func MustRoutingNumber(r RoutingNumber, err error) RoutingNumber {
	if err != nil {
		panic(err)
	}

	return r
}

// Equal reports whether both routing numbers hold the same digits.
func (r RoutingNumber) Equal(x RoutingNumber) bool {
	return r.Validated.Equal(x.Validated)
}

// Secured returns the same routing number with masked rendering.
func (r RoutingNumber) Secured() RoutingNumberSecured {
	return RoutingNumberSecured{r.Validated}
}

// RoutingNumberSecured is a RoutingNumber that renders and serializes
// masked, e.g. "****0021". Validation is the same as RoutingNumber.
type RoutingNumberSecured struct {
	value.Validated[routingRule]
}

// NewRoutingNumberSecured trims and validates raw as a RoutingNumber.
func NewRoutingNumberSecured(raw string) (RoutingNumberSecured, error) {
	r, err := NewRoutingNumber(raw)
	if err != nil {
		return RoutingNumberSecured{}, err
	}

	return r.Secured(), nil
}

// Equal reports whether both routing numbers hold the same digits.
func (r RoutingNumberSecured) Equal(x RoutingNumberSecured) bool {
	return r.Validated.Equal(x.Validated)
}

// RoutingNumber returns the unmasked routing number.
func (r RoutingNumberSecured) RoutingNumber() RoutingNumber {
	return RoutingNumber{r.Validated}
}

// String returns the masked routing number.
func (r RoutingNumberSecured) String() string {
	return maskSecured(r.Raw())
}

// MarshalText implements the encoding.TextMarshaler interface
// with the masked form.
func (r RoutingNumberSecured) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// maskSecured masks an identifier. Validated identifiers are always
// longer than the visible tail; anything shorter (only reachable through
// unchecked construction) is fully masked.
func maskSecured(raw string) string {
	masked, err := stringx.MaskDefault(raw)
	if err != nil {
		return strings.Repeat(string(stringx.DefaultPadChar), stringx.DefaultTotalLength)
	}

	return masked
}
