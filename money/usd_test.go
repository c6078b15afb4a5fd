package money_test

import (
	"encoding/json"
	"testing"

	"github.com/eagleviewent/go-utilities/money"
	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func dollars(s string) money.USDMoney {
	return money.NewUSD(dec(s))
}

func TestUSD(t *testing.T) {
	t.Parallel()

	t.Run("Arithmetic", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		i.True(dollars("50").Add(dollars("25")).Equal(dollars("75")))
		i.True(dollars("50").Sub(dollars("75")).Equal(dollars("-25")))
		i.True(dollars("50").AddScalar(dec("0.125")).Equal(dollars("50.12")))
		i.True(dollars("50").SubScalar(dec("1")).Equal(dollars("49")))
		i.True(dollars("5").SubtractFrom(dec("20")).Equal(dollars("15")))
		i.True(dollars("5").MulScalar(dec("3")).Equal(dollars("15")))

		q, err := dollars("10").DivScalar(dec("4"))
		i.NoErr(err)
		i.True(q.Equal(dollars("2.5")))

		_, err = dollars("10").DivScalar(decimal.Zero)
		i.True(errors.Is(err, money.ErrInvalidOperation))

		ratio, err := dollars("10").Div(dollars("5"))
		i.NoErr(err)
		i.True(ratio.Equal(dec("2")))
	})

	t.Run("Comparisons", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		small, big := dollars("1"), dollars("2")

		i.True(small.LessThan(big))
		i.True(small.LessThanOrEqual(small))
		i.True(big.GreaterThan(small))
		i.True(big.GreaterThanOrEqual(big))
		i.Equal(0, small.Compare(dollars("1.00")))
	})

	t.Run("FromMoney", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		u, err := money.USDFromMoney(money.New(dec("3"), money.USD))
		i.NoErr(err)
		i.True(u.Equal(dollars("3")))

		_, err = money.USDFromMoney(money.New(dec("3"), money.EUR))
		i.True(errors.Is(err, money.ErrCurrencyMismatch))

		_, err = money.USDFromMoney(money.Money{})
		i.True(errors.Is(err, money.ErrCurrencyMismatch))

		m := dollars("4.5").Money()
		i.Equal(money.USD, m.Currency())
		i.True(m.Amount().Equal(dec("4.5")))
	})

	t.Run("MixedWithMoney", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		sum, err := dollars("1").AddMoney(usd("2"))
		i.NoErr(err)
		i.True(sum.Equal(usd("3")))

		diff, err := dollars("1").SubMoney(usd("2"))
		i.NoErr(err)
		i.True(diff.Equal(usd("-1")))

		prod, err := dollars("2").MulMoney(usd("3"))
		i.NoErr(err)
		i.True(prod.Equal(usd("6")))

		ratio, err := dollars("3").DivMoney(usd("2"))
		i.NoErr(err)
		i.True(ratio.Equal(dec("1.5")))

		c, err := dollars("3").CompareMoney(usd("2"))
		i.NoErr(err)
		i.Equal(1, c)

		gbp := money.New(dec("1"), money.GBP)

		_, err = dollars("1").AddMoney(gbp)
		i.True(errors.Is(err, money.ErrCurrencyMismatch))

		_, err = dollars("1").SubMoney(gbp)
		i.True(errors.Is(err, money.ErrCurrencyMismatch))

		_, err = dollars("1").MulMoney(gbp)
		i.True(errors.Is(err, money.ErrCurrencyMismatch))

		_, err = dollars("1").DivMoney(gbp)
		i.True(errors.Is(err, money.ErrCurrencyMismatch))

		_, err = dollars("1").CompareMoney(gbp)
		i.True(errors.Is(err, money.ErrCurrencyMismatch))
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		i.Equal("$75.00", dollars("75").String())
		i.Equal("$0.00", money.USDMoney{}.String())
		i.Equal("$1,000,000.01", dollars("1000000.01").String())
		i.Equal("$90,071,992,547,409.93", dollars("90071992547409.93").String())
	})

	t.Run("SplitAndTotals", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		shares, err := dollars("100").Split(3)
		i.NoErr(err)
		i.True(shares[0].Equal(dollars("33.34")))
		i.True(shares[1].Equal(dollars("33.33")))

		whole, err := dollars("100.99").SplitWholeDollar(3)
		i.NoErr(err)
		i.True(whole[0].Equal(dollars("34")))
		i.True(whole[2].Equal(dollars("33")))

		i.True(dollars("7.89").TotalBills().Equal(dollars("7")))
		i.True(dollars("7.89").TotalCoins().Equal(dollars("0.89")))
	})

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		type payment struct {
			Amount money.USDMoney `json:"amount"`
		}

		b, err := json.Marshal(payment{Amount: dollars("19.99")})
		i.NoErr(err)
		i.Equal(`{"amount":19.99}`, string(b))

		var p payment

		i.NoErr(json.Unmarshal([]byte(`{"amount":"5.005"}`), &p))
		i.True(p.Amount.Equal(dollars("5")))

		i.NoErr(json.Unmarshal([]byte(`{"amount":null}`), &p))
		i.True(p.Amount.IsZero())

		err = json.Unmarshal([]byte(`{"amount":"five"}`), &p)
		i.True(errors.Is(err, money.ErrInvalidValue))
	})

	t.Run("SQL", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		v, err := dollars("12").Value()
		i.NoErr(err)
		i.Equal("12.00", v)

		var u money.USDMoney

		i.NoErr(u.Scan("12.345"))
		i.True(u.Equal(dollars("12.34")))

		i.NoErr(u.Scan(int64(3)))
		i.True(u.Equal(dollars("3")))

		i.NoErr(u.Scan(nil))
		i.True(u.IsZero())

		i.True(errors.Is(u.Scan(struct{}{}), money.ErrInvalidValue))
	})
}

func TestDenomination(t *testing.T) {
	t.Parallel()

	t.Run("Names", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		i.Equal("Pennies", money.Penny.PluralName())
		i.Equal("Fives", money.Five.PluralName())
		i.Equal("HalfDollars", money.HalfDollar.PluralName())
		i.Equal("Quarter", money.Quarter.String())

		d, err := money.ParseDenomination("twenty")
		i.NoErr(err)
		i.Equal(money.Twenty, d)

		_, err = money.ParseDenomination("Thousand")
		i.True(errors.Is(err, money.ErrInvalidValue))
	})

	t.Run("Values", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		i.True(money.Quarter.Value().Equal(dec("0.25")))
		i.True(money.Hundred.USD().Equal(dollars("100")))
		i.Equal(money.Coin, money.Dime.Kind())
		i.Equal(money.Bill, money.Fifty.Kind())
		i.Equal(money.Both, money.Multiple.Kind())

		d, err := money.DenominationFromValue(dec("0.05"))
		i.NoErr(err)
		i.Equal(money.Nickel, d)

		d, err = money.DenominationFromValue(decimal.Zero)
		i.NoErr(err)
		i.Equal(money.DenominationZero, d)

		_, err = money.DenominationFromValue(dec("3"))
		i.True(errors.Is(err, money.ErrInvalidValue))
	})

	t.Run("Groups", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		for _, d := range money.Bills() {
			i.True(d.Kind() == money.Bill || d.Kind() == money.Both)
		}

		for _, d := range money.Coins() {
			i.True(d.Kind() == money.Coin || d.Kind() == money.Both)
		}

		i.Equal(8, len(money.Bills()))
		i.Equal(7, len(money.Coins()))
	})

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		b, err := json.Marshal([]money.Denomination{money.Quarter, money.One})
		i.NoErr(err)
		i.Equal(`["Quarter","One"]`, string(b))

		var ds []money.Denomination

		i.NoErr(json.Unmarshal([]byte(`["penny",10,0.1]`), &ds))
		i.Equal([]money.Denomination{money.Penny, money.Ten, money.Dime}, ds)

		err = json.Unmarshal([]byte(`[true]`), &ds)
		i.True(errors.Is(err, money.ErrInvalidValue))
	})
}
