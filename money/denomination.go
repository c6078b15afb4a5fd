package money

import (
	"encoding/json"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/shopspring/decimal"
)

// DenominationKind tells whether a denomination is a bill, a coin or
// a pseudo denomination usable for both.
type DenominationKind uint8

// Denomination kinds.
const (
	Bill DenominationKind = iota + 1
	Coin
	Both
)

func (k DenominationKind) String() string {
	switch k {
	case Bill:
		return "Bill"
	case Coin:
		return "Coin"
	case Both:
		return "Both"
	default:
		return "Unknown"
	}
}

// Denomination is a US bill or coin.
type Denomination uint8

// US denominations. Multiple and DenominationZero are pseudo
// denominations used for mixed or empty drawers.
const (
	DenominationZero Denomination = iota
	Penny
	Nickel
	Dime
	Quarter
	HalfDollar
	One
	Five
	Ten
	Twenty
	Fifty
	Hundred
	Multiple
)

type denominationInfo struct {
	name  string
	cents int64
	kind  DenominationKind
}

var denominations = [...]denominationInfo{
	DenominationZero: {"Zero", 0, Both},
	Penny:            {"Penny", 1, Coin},
	Nickel:           {"Nickel", 5, Coin},
	Dime:             {"Dime", 10, Coin},
	Quarter:          {"Quarter", 25, Coin},
	HalfDollar:       {"HalfDollar", 50, Coin},
	One:              {"One", 100, Bill},
	Five:             {"Five", 500, Bill},
	Ten:              {"Ten", 1000, Bill},
	Twenty:           {"Twenty", 2000, Bill},
	Fifty:            {"Fifty", 5000, Bill},
	Hundred:          {"Hundred", 10000, Bill},
	Multiple:         {"Multiple", 0, Both},
}

// Denominations returns every denomination, pseudo ones included.
func Denominations() []Denomination {
	out := make([]Denomination, 0, len(denominations))

	for d := range denominations {
		out = append(out, Denomination(d))
	}

	return out
}

// Bills returns the bill denominations followed by Multiple and
// DenominationZero.
func Bills() []Denomination {
	return []Denomination{Fifty, Five, Hundred, One, Ten, Twenty, Multiple, DenominationZero}
}

// Coins returns the coin denominations followed by Multiple and
// DenominationZero.
func Coins() []Denomination {
	return []Denomination{Dime, HalfDollar, Nickel, Penny, Quarter, Multiple, DenominationZero}
}

// ParseDenomination resolves a denomination by name, ignoring case.
func ParseDenomination(name string) (Denomination, error) {
	name = strings.TrimSpace(name)

	for _, d := range Denominations() {
		if strings.EqualFold(denominations[d].name, name) {
			return d, nil
		}
	}

	return DenominationZero, errors.NewInvalidValue("Denomination", name)
}

// DenominationFromValue resolves a denomination by its dollar value.
// A zero value gives DenominationZero.
func DenominationFromValue(v decimal.Decimal) (Denomination, error) {
	cents := v.Mul(hundred)

	for _, d := range Denominations() {
		if d == Multiple {
			continue
		}

		if cents.Equal(decimal.NewFromInt(denominations[d].cents)) {
			return d, nil
		}
	}

	return DenominationZero, errors.NewInvalidValue("Denomination", v.String())
}

// IsValid reports whether d is a known denomination.
func (d Denomination) IsValid() bool {
	return int(d) < len(denominations)
}

// String returns the name of d, e.g. "Quarter".
func (d Denomination) String() string {
	if !d.IsValid() {
		return "Unknown"
	}

	return denominations[d].name
}

// PluralName returns the plural of the name, e.g. "Pennies", "Fives".
func (d Denomination) PluralName() string {
	name := d.String()

	if strings.HasSuffix(name, "y") {
		return strings.TrimSuffix(name, "y") + "ies"
	}

	return name + "s"
}

// Kind returns whether d is a bill or a coin.
func (d Denomination) Kind() DenominationKind {
	if !d.IsValid() {
		return 0
	}

	return denominations[d].kind
}

// Value returns the dollar value of d.
func (d Denomination) Value() decimal.Decimal {
	if !d.IsValid() {
		return decimal.Zero
	}

	return decimal.New(denominations[d].cents, -Places)
}

// USD returns the value of d as a USDMoney.
func (d Denomination) USD() USDMoney {
	return NewUSD(d.Value())
}

// MarshalJSON implements the json.Marshaler interface.
// A denomination is written by name.
func (d Denomination) MarshalJSON() ([]byte, error) {
	if !d.IsValid() {
		return nil, errors.NewInvalidValue("Denomination", d.String())
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both names and numeric dollar values are accepted.
func (d *Denomination) UnmarshalJSON(data []byte) error {
	var name string

	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseDenomination(name)
		if err != nil {
			return err
		}

		*d = parsed

		return nil
	}

	var v decimal.Decimal

	if err := v.UnmarshalJSON(data); err != nil {
		return errors.NewInvalidValue("Denomination", string(data))
	}

	parsed, err := DenominationFromValue(v)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
