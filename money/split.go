package money

import (
	"github.com/eagleviewent/go-utilities/errors"
	"github.com/shopspring/decimal"
)

var (
	cent    = decimal.New(1, -Places)
	hundred = decimal.NewFromInt(100)
)

// Split divides m into parts shares that differ by at most one cent.
// The leftover cents go to the first shares, so the shares always add
// up to m. Negative amounts are split by magnitude.
func (m Money) Split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, errors.NewInvalidArgument(
			"parts must be greater than zero, got %d",
			parts,
		)
	}

	cents := m.amount.Abs().Mul(hundred).Truncate(0)

	return distribute(cents, parts, cent, m.currency, m.amount.IsNegative()), nil
}

// SplitWholeDollar divides the whole units of m into parts shares of
// whole units that differ by at most one. The fraction of m is dropped
// and the leftover units go to the first shares.
func (m Money) SplitWholeDollar(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, errors.NewInvalidArgument(
			"parts must be greater than zero, got %d",
			parts,
		)
	}

	units := m.amount.Abs().Truncate(0)

	return distribute(units, parts, decimal.NewFromInt(1), m.currency, m.amount.IsNegative()), nil
}

// distribute splits count steps of size step into parts shares.
func distribute(
	count decimal.Decimal,
	parts int,
	step decimal.Decimal,
	c Currency,
	negative bool,
) []Money {
	n := decimal.NewFromInt(int64(parts))

	q, r := count.QuoRem(n, 0)
	extra := r.IntPart()

	shares := make([]Money, parts)

	for i := range shares {
		share := q
		if int64(i) < extra {
			share = share.Add(decimal.NewFromInt(1))
		}

		amount := share.Mul(step)
		if negative {
			amount = amount.Neg()
		}

		shares[i] = New(amount, c)
	}

	return shares
}

// TotalBills returns the whole unit part of m, the amount payable in
// bills. Zero gives zero in the same currency.
func (m Money) TotalBills() Money {
	return New(m.amount.Truncate(0), m.currency)
}

// TotalCoins returns the fractional part of m, the amount payable in
// coins. Zero gives zero in the same currency.
func (m Money) TotalCoins() Money {
	return New(m.amount.Sub(m.amount.Truncate(0)), m.currency)
}
