package numeric_test

import (
	"testing"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/numeric"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRounding(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	tests := []struct {
		in, bank, away string
	}{
		{"2.345", "2.34", "2.35"},
		{"2.355", "2.36", "2.36"},
		{"-2.345", "-2.34", "-2.35"},
		{"1.005", "1", "1.01"},
		{"7", "7", "7"},
	}

	for _, tt := range tests {
		i.True(numeric.BankersRound(dec(tt.in), numeric.DefaultPlaces).Equal(dec(tt.bank)))
		i.True(numeric.RoundAwayFromZero(dec(tt.in), numeric.DefaultPlaces).Equal(dec(tt.away)))
	}
}

func TestCurrencyString(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	i.Equal("$1,234.56", numeric.CurrencyString(dec("1234.565")))
	i.Equal("$0.00", numeric.CurrencyString(decimal.Zero))
	i.Equal("-$3.10", numeric.CurrencyString(dec("-3.1")))
}

func TestFractionString(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	tests := map[string]string{
		"1.5":    "1 1/2",
		"0.75":   "3/4",
		"-0.75":  "-3/4",
		"-2.25":  "-2 1/4",
		"3":      "3",
		"0":      "0",
		"0.3333": "1/3",
		"2.9999": "3",
		"0.125":  "1/8",
	}

	for in, want := range tests {
		i.Equal(want, numeric.FractionString(dec(in), numeric.DefaultMaxDenominator))
	}

	i.Equal("1/2", numeric.FractionString(dec("0.45"), 2))
	i.Equal("1/8", numeric.FractionString(dec("0.125"), 0))
}

func TestAreBitsSet(t *testing.T) {
	t.Parallel()

	i := is.New(t)

	const (
		read  uint8 = 1 << 0
		write uint8 = 1 << 1
		exec  uint8 = 1 << 2
	)

	ok, err := numeric.AreBitsSet(read|write, read, write)
	i.NoErr(err)
	i.True(ok)

	ok, err = numeric.AreBitsSet(read|write, read|exec)
	i.NoErr(err)
	i.True(!ok)

	ok, err = numeric.AreBitsSet(int64(-1), 1<<40)
	i.NoErr(err)
	i.True(ok)

	_, err = numeric.AreBitsSet(read)
	i.True(errors.Is(err, errors.ErrInvalidArgument))
}
