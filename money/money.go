// Package money implements a decimal monetary amount bound to a closed
// set of currencies, with currency-checked arithmetic, culture aware
// formatting, even splitting and US bill/coin breakdowns.
package money

import (
	"fmt"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/shopspring/decimal"
)

// Places is the number of fraction digits every amount is rounded to.
const Places = 2

// Money is an amount paired with a Currency.
// Amounts are normalized to Places digits with banker's rounding.
//
// The zero value is 0 in the Empty currency.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// Zero is 0 in the default currency.
var Zero = New(decimal.Zero, DefaultCurrency)

// New creates a Money, rounding value half to even.
func New(value decimal.Decimal, c Currency) Money {
	return Money{
		amount:   value.RoundBank(Places),
		currency: c,
	}
}

// FromDecimal creates a Money in the default currency.
func FromDecimal(value decimal.Decimal) Money {
	return New(value, DefaultCurrency)
}

// NewFromString parses value as a decimal and creates a Money in c.
func NewFromString(value string, c Currency) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, fmt.Errorf(
			"%w: %w",
			errors.NewInvalidValue("Money", value),
			err,
		)
	}

	return New(d, c), nil
}

// MustNew returns m if err is nil and panics otherwise.
func MustNew(m Money, err error) Money {
	if err != nil {
		panic(err)
	}

	return m
}

// Amount returns the rounded amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of m.
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports whether the amount is zero, regardless of currency.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func ensureSameCurrency(x, y Money) error {
	if x.currency != y.currency {
		return errors.NewCurrencyMismatch(x.currency, y.currency)
	}

	return nil
}

// Add returns m + x. Both must share a currency.
func (m Money) Add(x Money) (Money, error) {
	if err := ensureSameCurrency(m, x); err != nil {
		return Money{}, err
	}

	return New(m.amount.Add(x.amount), m.currency), nil
}

// Sub returns m - x. Both must share a currency.
func (m Money) Sub(x Money) (Money, error) {
	if err := ensureSameCurrency(m, x); err != nil {
		return Money{}, err
	}

	return New(m.amount.Sub(x.amount), m.currency), nil
}

// Mul returns m * x in the shared currency.
func (m Money) Mul(x Money) (Money, error) {
	if err := ensureSameCurrency(m, x); err != nil {
		return Money{}, err
	}

	return New(m.amount.Mul(x.amount), m.currency), nil
}

// Div returns the ratio m / x as a plain decimal.
// Both must share a currency and x must not be zero.
func (m Money) Div(x Money) (decimal.Decimal, error) {
	if err := ensureSameCurrency(m, x); err != nil {
		return decimal.Zero, err
	}

	if x.amount.IsZero() {
		return decimal.Zero, errors.NewInvalidOperation("division by zero")
	}

	return m.amount.Div(x.amount), nil
}

// AddScalar returns m + d in the currency of m.
func (m Money) AddScalar(d decimal.Decimal) Money {
	return New(m.amount.Add(d), m.currency)
}

// SubScalar returns m - d in the currency of m.
func (m Money) SubScalar(d decimal.Decimal) Money {
	return New(m.amount.Sub(d), m.currency)
}

// SubtractFrom returns d - m in the currency of m.
func (m Money) SubtractFrom(d decimal.Decimal) Money {
	return New(d.Sub(m.amount), m.currency)
}

// MulScalar returns m * d in the currency of m.
func (m Money) MulScalar(d decimal.Decimal) Money {
	return New(m.amount.Mul(d), m.currency)
}

// DivScalar returns m / d in the currency of m.
func (m Money) DivScalar(d decimal.Decimal) (Money, error) {
	if d.IsZero() {
		return Money{}, errors.NewInvalidOperation("division by zero")
	}

	return New(m.amount.Div(d), m.currency), nil
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

// Compare returns -1, 0 or +1 as m is less than, equal to or greater
// than x. Both must share a currency.
func (m Money) Compare(x Money) (int, error) {
	if err := ensureSameCurrency(m, x); err != nil {
		return 0, err
	}

	return m.amount.Cmp(x.amount), nil
}

// Equal reports whether m and x have the same amount and currency.
func (m Money) Equal(x Money) bool {
	return m.currency == x.currency && m.amount.Equal(x.amount)
}

// String formats the amount with the culture of its currency followed
// by the currency code, e.g. "$1,234.50 USD". Zero prints as "0.00 USD".
func (m Money) String() string {
	if m.IsZero() {
		return "0.00 " + m.currency.String()
	}

	return formatAmount(m.amount, m.currency) + " " + m.currency.String()
}

// StringOrNone behaves like String but prints "None" for zero.
func (m Money) StringOrNone() string {
	if m.IsZero() {
		return "None"
	}

	return m.String()
}

// Format returns the culture formatted amount without the currency
// code, e.g. "$1,234.50".
func (m Money) Format() string {
	return formatAmount(m.amount, m.currency)
}
