package money

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/shopspring/decimal"
)

var (
	// ensure USDMoney implements valuer and scanner interface.
	_ sql.Scanner   = (*USDMoney)(nil)
	_ driver.Valuer = (*USDMoney)(nil)

	// ensure USDMoney implements json marshaller and unmarshaler interface.
	_ json.Marshaler   = (*USDMoney)(nil)
	_ json.Unmarshaler = (*USDMoney)(nil)
)

// USDMoney is a Money pinned to US dollars. Operations between two
// USDMoney values cannot fail on currency.
//
// The zero value is $0.00.
type USDMoney struct {
	amount decimal.Decimal
}

// ZeroUSD is $0.00.
var ZeroUSD = NewUSD(decimal.Zero)

// NewUSD creates a USDMoney, rounding value half to even.
func NewUSD(value decimal.Decimal) USDMoney {
	return USDMoney{amount: value.RoundBank(Places)}
}

// NewUSDFromString parses value as a decimal dollar amount.
func NewUSDFromString(value string) (USDMoney, error) {
	m, err := NewFromString(value, USD)
	if err != nil {
		return USDMoney{}, err
	}

	return USDMoney{amount: m.amount}, nil
}

// USDFromMoney converts m, which must be in US dollars.
func USDFromMoney(m Money) (USDMoney, error) {
	if m.currency != USD {
		return USDMoney{}, errors.NewCurrencyMismatch(USD, m.currency)
	}

	return USDMoney{amount: m.amount}, nil
}

// Money returns u as a Money in USD.
func (u USDMoney) Money() Money {
	return Money{amount: u.amount, currency: USD}
}

// Amount returns the rounded amount.
func (u USDMoney) Amount() decimal.Decimal {
	return u.amount
}

// IsZero reports whether u is $0.00.
func (u USDMoney) IsZero() bool {
	return u.amount.IsZero()
}

// Add returns u + x.
func (u USDMoney) Add(x USDMoney) USDMoney {
	return NewUSD(u.amount.Add(x.amount))
}

// Sub returns u - x.
func (u USDMoney) Sub(x USDMoney) USDMoney {
	return NewUSD(u.amount.Sub(x.amount))
}

// Div returns the ratio u / x.
func (u USDMoney) Div(x USDMoney) (decimal.Decimal, error) {
	return u.Money().Div(x.Money())
}

// AddScalar returns u + d.
func (u USDMoney) AddScalar(d decimal.Decimal) USDMoney {
	return NewUSD(u.amount.Add(d))
}

// SubScalar returns u - d.
func (u USDMoney) SubScalar(d decimal.Decimal) USDMoney {
	return NewUSD(u.amount.Sub(d))
}

// SubtractFrom returns d - u.
func (u USDMoney) SubtractFrom(d decimal.Decimal) USDMoney {
	return NewUSD(d.Sub(u.amount))
}

// MulScalar returns u * d.
func (u USDMoney) MulScalar(d decimal.Decimal) USDMoney {
	return NewUSD(u.amount.Mul(d))
}

// DivScalar returns u / d.
func (u USDMoney) DivScalar(d decimal.Decimal) (USDMoney, error) {
	if d.IsZero() {
		return USDMoney{}, errors.NewInvalidOperation("division by zero")
	}

	return NewUSD(u.amount.Div(d)), nil
}

// AddMoney returns u + m as a Money. m must be in USD.
func (u USDMoney) AddMoney(m Money) (Money, error) {
	return u.Money().Add(m)
}

// SubMoney returns u - m as a Money. m must be in USD.
func (u USDMoney) SubMoney(m Money) (Money, error) {
	return u.Money().Sub(m)
}

// MulMoney returns u * m as a Money. m must be in USD.
func (u USDMoney) MulMoney(m Money) (Money, error) {
	if err := ensureSameCurrency(u.Money(), m); err != nil {
		return Money{}, err
	}

	return u.Money().MulScalar(m.amount), nil
}

// DivMoney returns the ratio u / m. m must be in USD.
func (u USDMoney) DivMoney(m Money) (decimal.Decimal, error) {
	return u.Money().Div(m)
}

// CompareMoney compares u with m. m must be in USD.
func (u USDMoney) CompareMoney(m Money) (int, error) {
	return u.Money().Compare(m)
}

// Compare returns -1, 0 or +1 as u is less than, equal to or greater
// than x.
func (u USDMoney) Compare(x USDMoney) int {
	return u.amount.Cmp(x.amount)
}

// Equal reports whether u and x are the same amount.
func (u USDMoney) Equal(x USDMoney) bool {
	return u.amount.Equal(x.amount)
}

// LessThan reports whether u < x.
func (u USDMoney) LessThan(x USDMoney) bool { return u.Compare(x) < 0 }

// LessThanOrEqual reports whether u <= x.
func (u USDMoney) LessThanOrEqual(x USDMoney) bool { return u.Compare(x) <= 0 }

// GreaterThan reports whether u > x.
func (u USDMoney) GreaterThan(x USDMoney) bool { return u.Compare(x) > 0 }

// GreaterThanOrEqual reports whether u >= x.
func (u USDMoney) GreaterThanOrEqual(x USDMoney) bool { return u.Compare(x) >= 0 }

// Split divides u into parts shares, see Money.Split.
func (u USDMoney) Split(parts int) ([]USDMoney, error) {
	shares, err := u.Money().Split(parts)
	if err != nil {
		return nil, err
	}

	return toUSD(shares), nil
}

// SplitWholeDollar divides the whole dollars of u into parts shares,
// see Money.SplitWholeDollar.
func (u USDMoney) SplitWholeDollar(parts int) ([]USDMoney, error) {
	shares, err := u.Money().SplitWholeDollar(parts)
	if err != nil {
		return nil, err
	}

	return toUSD(shares), nil
}

func toUSD(shares []Money) []USDMoney {
	out := make([]USDMoney, len(shares))

	for i, s := range shares {
		out[i] = USDMoney{amount: s.amount}
	}

	return out
}

// TotalBills returns the whole dollars of u.
func (u USDMoney) TotalBills() USDMoney {
	return USDMoney{amount: u.Money().TotalBills().amount}
}

// TotalCoins returns the cents of u.
func (u USDMoney) TotalCoins() USDMoney {
	return USDMoney{amount: u.Money().TotalCoins().amount}
}

// String formats u in en-US, e.g. "$1,234.50".
func (u USDMoney) String() string {
	return formatAmount(u.amount, USD)
}

// MarshalJSON implements the json.Marshaler interface.
// The amount is written as a bare number.
func (u USDMoney) MarshalJSON() ([]byte, error) {
	return []byte(u.amount.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Numbers and numeric strings are accepted.
func (u *USDMoney) UnmarshalJSON(data []byte) error {
	var d decimal.NullDecimal

	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %w", errors.NewInvalidValue("USDMoney", string(data)), err)
	}

	*u = NewUSD(d.Decimal)

	return nil
}

// Value defines how the amount is stored in the database,
// as a plain decimal.
func (u USDMoney) Value() (driver.Value, error) {
	return u.amount.StringFixed(Places), nil
}

// Scan defines how the amount is read from the database.
func (u *USDMoney) Scan(src any) error {
	if src == nil {
		*u = USDMoney{}

		return nil
	}

	var d decimal.Decimal

	if err := d.Scan(src); err != nil {
		return fmt.Errorf(
			"%w: could not scan type %T into USDMoney: %w",
			errors.ErrInvalidValue,
			src,
			err,
		)
	}

	*u = NewUSD(d)

	return nil
}
