package stringx

import (
	"strings"

	"github.com/eagleviewent/go-utilities/errors"
)

// Default masking parameters.
const (
	DefaultVisibleChars = 4
	DefaultTotalLength  = 8
	DefaultPadChar      = '*'
)

// LastN returns the last n runes of value, or value itself
// when it is not longer than n. A non-positive n yields "".
func LastN(value string, n int) string {
	if n <= 0 {
		return ""
	}

	r := []rune(value)
	if len(r) <= n {
		return value
	}

	return string(r[len(r)-n:])
}

// Mask keeps the last visible runes of value and left-pads them with pad
// up to total runes. A visible tail already at least total runes long is
// returned as is.
//
// An empty value yields an empty string. A value that is not longer than
// visible cannot be masked and yields an invalid-operation error.
// Negative widths are invalid arguments.
func Mask(value string, visible, total int, pad rune) (string, error) {
	if visible < 0 || total < 0 {
		return "", errors.NewInvalidArgument("visible %d and total %d must not be negative", visible, total)
	}

	if value == "" {
		return "", nil
	}

	n := len([]rune(value))
	if n <= visible {
		return "", errors.NewInvalidOperation(
			"value length %d must be greater than visible characters %d",
			n,
			visible,
		)
	}

	tail := LastN(value, visible)

	padding := total - len([]rune(tail))
	if padding <= 0 {
		return tail, nil
	}

	return strings.Repeat(string(pad), padding) + tail, nil
}

// MaskDefault masks value showing the last four characters
// in an eight character wide field.
func MaskDefault(value string) (string, error) {
	return Mask(value, DefaultVisibleChars, DefaultTotalLength, DefaultPadChar)
}
