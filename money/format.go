package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// nbsp separates the amount and a trailing currency symbol.
const nbsp = "\u00a0"

type separators struct {
	group   string
	decimal string
}

// separatorsFor reads the grouping and decimal separators of tag off a
// formatted sample, falling back to "," and ".".
func separatorsFor(tag language.Tag) separators {
	sep := separators{group: ",", decimal: "."}

	s := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234567.5, number.Scale(1)))

	hi := strings.Index(s, "234")
	lo := strings.LastIndex(s, "567")

	if !strings.HasPrefix(s, "1") || hi < 1 || lo < hi+3 || !strings.HasSuffix(s, "5") {
		return sep
	}

	sep.group = s[1:hi]
	sep.decimal = s[lo+3 : len(s)-1]

	return sep
}

// groupDigits inserts sep between every three digits of the integer part.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	b.WriteString(digits[:head])

	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// formatAmount renders d with the symbol, grouping and fraction digits
// of the culture bound to c, e.g. "$1,234.50" or "1 234,50 €".
// The digits come from the exact decimal value.
func formatAmount(d decimal.Decimal, c Currency) string {
	if !c.IsValid() {
		c = Empty
	}

	cult := cultures[c]
	scale := int32(c.Scale())
	sep := separatorsFor(cult.tag)

	fixed := d.Abs().RoundBank(scale).StringFixed(scale)
	whole, frac, _ := strings.Cut(fixed, ".")

	digits := groupDigits(whole, sep.group)
	if frac != "" {
		digits += sep.decimal + frac
	}

	s := cult.symbol + digits
	if cult.symbolAfter {
		s = digits + nbsp + cult.symbol
	}

	if d.IsNegative() && !d.RoundBank(scale).IsZero() {
		s = "-" + s
	}

	return s
}
