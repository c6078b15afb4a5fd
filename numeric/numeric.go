// Package numeric holds rounding, formatting and bit mask helpers for
// decimal and integer values.
package numeric

import (
	"strconv"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/money"
	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of fraction digits kept by the rounding
// helpers when none is given.
const DefaultPlaces = 2

// DefaultMaxDenominator bounds the search of FractionString.
const DefaultMaxDenominator = 1000

// BankersRound rounds d to places digits, halves to even.
func BankersRound(d decimal.Decimal, places int32) decimal.Decimal {
	return d.RoundBank(places)
}

// RoundAwayFromZero rounds d to places digits, halves away from zero.
func RoundAwayFromZero(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// CurrencyString rounds d half to even and formats it as US dollars,
// e.g. "$1,234.50".
func CurrencyString(d decimal.Decimal) string {
	return money.NewUSD(d).String()
}

// FractionString renders d as a whole number and the closest fraction
// whose denominator does not exceed maxDenominator, e.g. "1 1/2" or
// "-3/4". A non-positive maxDenominator uses DefaultMaxDenominator.
func FractionString(d decimal.Decimal, maxDenominator int) string {
	if maxDenominator <= 0 {
		maxDenominator = DefaultMaxDenominator
	}

	negative := d.IsNegative()
	abs := d.Abs()

	whole := abs.Truncate(0)
	frac := abs.Sub(whole)

	numerator, denominator := int64(0), int64(1)

	if !frac.IsZero() {
		best := frac

		for den := int64(1); den <= int64(maxDenominator); den++ {
			dd := decimal.NewFromInt(den)

			num := frac.Mul(dd).RoundBank(0)
			diff := num.Div(dd).Sub(frac).Abs()

			if diff.LessThan(best) {
				numerator, denominator, best = num.IntPart(), den, diff

				if diff.IsZero() {
					break
				}
			}
		}
	}

	if numerator == denominator {
		whole = whole.Add(decimal.NewFromInt(1))
		numerator = 0
	}

	sign := ""
	if negative {
		sign = "-"
	}

	switch {
	case numerator == 0:
		if whole.IsZero() {
			return "0"
		}

		return sign + whole.String()

	case whole.IsZero():
		return sign + strconv.FormatInt(numerator, 10) + "/" + strconv.FormatInt(denominator, 10)

	default:
		return sign + whole.String() + " " +
			strconv.FormatInt(numerator, 10) + "/" + strconv.FormatInt(denominator, 10)
	}
}

// Integer is the set of integer types a bit mask can be held in.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AreBitsSet reports whether every mask in bits is fully set in v.
// At least one mask is required.
func AreBitsSet[T Integer](v T, bits ...T) (bool, error) {
	if len(bits) == 0 {
		return false, errors.NewInvalidArgument("at least one bit mask is required")
	}

	for _, b := range bits {
		if v&b != b {
			return false, nil
		}
	}

	return true, nil
}
