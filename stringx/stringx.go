// Package stringx holds small string helpers: security masking,
// casing, phone number formatting and ordinal suffixes.
package stringx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	camelCaseRegex = regexp.MustCompile(`[A-Z][a-z]*|[a-z]+|\d+`)
	nonDigitRegex  = regexp.MustCompile(`\D`)
	phoneMaskRegex = regexp.MustCompile(`(\d{3})(\d{3})(\d{4})`)
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DefaultIfBlank returns def when s is blank, s otherwise.
func DefaultIfBlank(s, def string) string {
	if IsBlank(s) {
		return def
	}

	return s
}

// RequireNotBlank returns an invalid-argument error when s is blank.
func RequireNotBlank(s string) error {
	if IsBlank(s) {
		return errors.NewInvalidArgument("value cannot be empty or whitespace")
	}

	return nil
}

// SplitCamelCase splits an identifier such as "AccountNumber2" into
// space separated words: "Account Number 2".
func SplitCamelCase(s string) string {
	return strings.Join(camelCaseRegex.FindAllString(s, -1), " ")
}

// ProperCase lower-cases s and then upper-cases the first letter of every word.
func ProperCase(s string) string {
	// a Caser is stateful, so one is built per call.
	return cases.Title(language.AmericanEnglish).String(strings.ToLower(s))
}

// FormatPhoneNumber strips every non digit from phoneNumber and formats
// the first ten digits as "(ddd) ddd-dddd".
// Inputs with fewer than ten digits are returned as digits only.
func FormatPhoneNumber(phoneNumber string) string {
	digits := nonDigitRegex.ReplaceAllString(phoneNumber, "")

	return phoneMaskRegex.ReplaceAllString(digits, "($1) $2-$3")
}

// Ordinal returns n followed by its English ordinal suffix, e.g. 1st, 22nd, 113th.
// When asHTML is true the suffix is wrapped in a <sup> element.
func Ordinal(n int, asHTML bool) (string, error) {
	if n < 0 {
		return "", errors.NewInvalidArgument("the number must be non-negative, got %d", n)
	}

	suffix := "th"

	if lastTwo := n % 100; lastTwo < 11 || lastTwo > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	if asHTML {
		return fmt.Sprintf("%d<sup>%s</sup>", n, suffix), nil
	}

	return fmt.Sprintf("%d%s", n, suffix), nil
}
