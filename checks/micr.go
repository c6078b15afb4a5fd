package checks

import (
	"database/sql/driver"
	"fmt"
	"regexp"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/value"
)

// micrRegex matches a raw MICR line: "@" routing "@" account, then an
// optional "+" and check number.
var micrRegex = regexp.MustCompile(
	`^@(?P<routing>\d{9})@(?P<account>\d{6,17})\+?(?P<check>\d{0,10})$`,
)

type micrRule struct{}

func (micrRule) Name() string { return "Micr" }

func (micrRule) Validate(s string) bool {
	return s == "" || micrRegex.MatchString(s)
}

// Micr is a parsed MICR line. It keeps the raw line as its value and
// exposes the routing, account and check numbers found in it.
// The zero value is the empty MICR.
type Micr struct {
	value.Validated[micrRule]

	routing RoutingNumber
	account AccountNumber
	check   CheckNumber
}

// NewMicr trims and parses raw. An empty input gives the empty Micr.
// A non-empty input must match the MICR format and every field must
// be valid for its type, otherwise an invalid-value error is returned.
func NewMicr(raw string) (Micr, error) {
	v, err := value.New[micrRule](raw)
	if err != nil {
		return Micr{}, err
	}

	routing, account, check, err := parseMicr(v.Raw())
	if err != nil {
		return Micr{}, fmt.Errorf("%w: %w", errors.NewInvalidValue("Micr", v.Raw()), err)
	}

	return Micr{
		Validated: v,
		routing:   routing,
		account:   account,
		check:     check,
	}, nil
}

// MustMicr returns m if err is nil and panics otherwise.
func MustMicr(m Micr, err error) Micr {
	if err != nil {
		panic(err)
	}

	return m
}

func parseMicr(raw string) (RoutingNumber, AccountNumber, CheckNumber, error) {
	if raw == "" {
		return RoutingNumber{}, AccountNumber{}, CheckNumber{}, nil
	}

	match := micrRegex.FindStringSubmatch(raw)
	if match == nil {
		return RoutingNumber{}, AccountNumber{}, CheckNumber{},
			errors.NewInvalidValue("Micr", raw)
	}

	group := func(name string) string {
		return match[micrRegex.SubexpIndex(name)]
	}

	routing, err := NewRoutingNumber(group("routing"))
	if err != nil {
		return RoutingNumber{}, AccountNumber{}, CheckNumber{}, err
	}

	account, err := NewAccountNumber(group("account"))
	if err != nil {
		return RoutingNumber{}, AccountNumber{}, CheckNumber{}, err
	}

	check, err := NewCheckNumber(group("check"))
	if err != nil {
		return RoutingNumber{}, AccountNumber{}, CheckNumber{}, err
	}

	return routing, account, check, nil
}

// RoutingNumber returns the routing number of the line.
func (m Micr) RoutingNumber() RoutingNumber { return m.routing }

// AccountNumber returns the account number of the line.
func (m Micr) AccountNumber() AccountNumber { return m.account }

// CheckNumber returns the check number of the line, empty when absent.
func (m Micr) CheckNumber() CheckNumber { return m.check }

// IsValid reports whether the line is non-empty and carries both
// a routing and an account number. The check number is optional.
func (m Micr) IsValid() bool {
	return !m.IsEmpty() && !m.account.IsEmpty() && !m.routing.IsEmpty()
}

// Equal reports whether both lines are identical.
func (m Micr) Equal(x Micr) bool {
	return m.Validated.Equal(x.Validated)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Micr) UnmarshalText(text []byte) error {
	parsed, err := NewMicr(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Value defines how the line is stored in the database.
func (m Micr) Value() (driver.Value, error) {
	return m.Raw(), nil
}

// Scan defines how the line is read from the database.
func (m *Micr) Scan(src any) error {
	switch t := src.(type) {
	case string:
		return m.UnmarshalText([]byte(t))

	case []byte:
		return m.UnmarshalText(t)

	case nil:
		*m = Micr{}

		return nil

	default:
		return fmt.Errorf(
			"%w: could not scan type %T into Micr",
			errors.ErrInvalidValue,
			t,
		)
	}
}

// FormatMicr builds the raw MICR line "@routing@account", followed by
// "+check" when a check number is present.
func FormatMicr(routing RoutingNumber, account AccountNumber, check CheckNumber) string {
	micr := "@" + routing.Raw() + "@" + account.Raw()

	if !check.IsEmpty() {
		micr += "+" + check.Raw()
	}

	return micr
}
