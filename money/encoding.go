package money

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/shopspring/decimal"
)

var (
	// ensure Money implements valuer and scanner interface.
	_ sql.Scanner   = (*Money)(nil)
	_ driver.Valuer = (*Money)(nil)

	// ensure Money implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = (*Money)(nil)
	_ encoding.TextUnmarshaler = (*Money)(nil)

	// ensure Money implements json marshaller and unmarshaler interface.
	_ json.Marshaler   = (*Money)(nil)
	_ json.Unmarshaler = (*Money)(nil)

	// ensure Money implements xml marshaller and unmarshaler interface.
	_ xml.Marshaler   = (*Money)(nil)
	_ xml.Unmarshaler = (*Money)(nil)
)

// Parse reads the text form of a Money: an amount optionally followed
// or preceded by a currency name, e.g. "12.34 USD", "EUR 5" or "7.5".
// A bare amount is in the default currency.
func Parse(s string) (Money, error) {
	fields := strings.Fields(s)

	var amount, cur string

	switch len(fields) {
	case 1:
		amount = fields[0]

	case 2:
		amount, cur = fields[0], fields[1]

		if _, err := decimal.NewFromString(amount); err != nil {
			amount, cur = cur, amount
		}

	default:
		return Money{}, errors.NewInvalidValue("Money", s)
	}

	c := DefaultCurrency

	if cur != "" {
		parsed, err := ParseCurrency(cur)
		if err != nil {
			return Money{}, fmt.Errorf(
				"%w: %w",
				errors.NewInvalidValue("Money", s),
				err,
			)
		}

		c = parsed
	}

	return NewFromString(amount, c)
}

// MarshalText implements the encoding.TextMarshaler interface,
// e.g. "12.34 USD".
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.amount.StringFixed(Places) + " " + m.currency.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

type moneyJSON struct {
	Value    json.Number `json:"Value"`
	Currency Currency    `json:"Currency"`
}

// MarshalJSON implements the json.Marshaler interface,
// e.g. {"Value":12.34,"Currency":"USD"}.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Value:    json.Number(m.amount.String()),
		Currency: m.currency,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// A missing Value reads as zero and a missing Currency as Empty.
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Value    decimal.NullDecimal `json:"Value"`
		Currency *Currency          `json:"Currency"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("%w: %w", errors.NewInvalidValue("Money", string(data)), err)
	}

	c := Empty
	if aux.Currency != nil {
		c = *aux.Currency
	}

	*m = New(aux.Value.Decimal, c)

	return nil
}

type moneyXML struct {
	Value    string `xml:"Value"`
	Currency string `xml:"Currency"`
}

// MarshalXML implements the xml.Marshaler interface.
// The element holds Value and Currency child elements.
func (m Money) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(moneyXML{
		Value:    m.amount.StringFixed(Places),
		Currency: m.currency.String(),
	}, start)
}

// UnmarshalXML implements the xml.Unmarshaler interface.
func (m *Money) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var aux moneyXML

	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}

	c := Empty

	if strings.TrimSpace(aux.Currency) != "" {
		parsed, err := ParseCurrency(aux.Currency)
		if err != nil {
			return err
		}

		c = parsed
	}

	if strings.TrimSpace(aux.Value) == "" {
		*m = New(decimal.Zero, c)

		return nil
	}

	parsed, err := NewFromString(aux.Value, c)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Value defines how the money is stored in the database,
// in its text form.
func (m Money) Value() (driver.Value, error) {
	return m.amount.StringFixed(Places) + " " + m.currency.String(), nil
}

// Scan defines how the money is read from the database.
// Numeric columns are read as amounts in the default currency.
func (m *Money) Scan(src any) error {
	switch t := src.(type) {
	case string:
		return m.UnmarshalText([]byte(t))

	case []byte:
		return m.UnmarshalText(t)

	case float64:
		*m = New(decimal.NewFromFloat(t), DefaultCurrency)

		return nil

	case int64:
		*m = New(decimal.NewFromInt(t), DefaultCurrency)

		return nil

	case nil:
		*m = Money{}

		return nil

	default:
		return fmt.Errorf(
			"%w: could not scan type %T into Money",
			errors.ErrInvalidValue,
			t,
		)
	}
}
