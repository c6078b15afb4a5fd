package money

import (
	"fmt"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Currency is the closed set of currencies a Money can carry.
// Each currency is bound to the culture used to format it.
type Currency uint8

// Supported currencies. Empty is the zero value.
const (
	Empty Currency = iota
	USD
	EUR
	GBP
	MXN
	VND
)

// DefaultCurrency is used when a Money is built from a bare amount.
const DefaultCurrency = USD

type culture struct {
	name        string
	tag         language.Tag
	symbol      string
	symbolAfter bool
}

var cultures = [...]culture{
	Empty: {name: "Empty", tag: language.AmericanEnglish, symbol: "$"},
	USD:   {name: "USD", tag: language.AmericanEnglish, symbol: "$"},
	EUR:   {name: "EUR", tag: language.MustParse("fr-FR"), symbol: "€", symbolAfter: true},
	GBP:   {name: "GBP", tag: language.BritishEnglish, symbol: "£"},
	MXN:   {name: "MXN", tag: language.MustParse("es-MX"), symbol: "$"},
	VND:   {name: "VND", tag: language.MustParse("vi-VN"), symbol: "₫", symbolAfter: true},
}

// Currencies returns every supported currency, Empty included.
func Currencies() []Currency {
	return []Currency{Empty, USD, EUR, GBP, MXN, VND}
}

// ParseCurrency resolves a currency by name, ignoring case.
func ParseCurrency(name string) (Currency, error) {
	name = strings.TrimSpace(name)

	for _, c := range Currencies() {
		if strings.EqualFold(cultures[c].name, name) {
			return c, nil
		}
	}

	return Empty, errors.NewInvalidValue("Currency", name)
}

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	return int(c) < len(cultures)
}

// String returns the currency name, e.g. "USD".
func (c Currency) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Currency(%d)", uint8(c))
	}

	return cultures[c].name
}

// Tag returns the language tag of the culture bound to c.
func (c Currency) Tag() language.Tag {
	if !c.IsValid() {
		return language.Und
	}

	return cultures[c].tag
}

// Unit returns the ISO 4217 unit of c.
// The Empty currency has no unit.
func (c Currency) Unit() (currency.Unit, bool) {
	if c == Empty || !c.IsValid() {
		return currency.Unit{}, false
	}

	u, err := currency.ParseISO(cultures[c].name)
	if err != nil {
		return currency.Unit{}, false
	}

	return u, true
}

// Scale returns the number of fraction digits shown when formatting c.
func (c Currency) Scale() int {
	const defaultScale = 2

	u, ok := c.Unit()
	if !ok {
		return defaultScale
	}

	scale, _ := currency.Standard.Rounding(u)

	return scale
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Currency) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, errors.NewInvalidValue("Currency", c.String())
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
