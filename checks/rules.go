package checks

// isDigits reports whether s is made of ASCII digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// abaWeights are the ABA routing number checksum weights.
var abaWeights = [9]int{7, 3, 9, 7, 3, 9, 7, 3, 9}

// validABAChecksum expects nine ASCII digits.
func validABAChecksum(s string) bool {
	var sum int

	for i, w := range abaWeights {
		sum += w * int(s[i]-'0')
	}

	return sum%10 == 0
}

type routingRule struct{}

func (routingRule) Name() string { return "RoutingNumber" }

func (routingRule) Validate(s string) bool {
	if s == "" {
		return true
	}

	const routingNumberLength = 9

	return len(s) == routingNumberLength && isDigits(s) && validABAChecksum(s)
}

type accountRule struct{}

func (accountRule) Name() string { return "AccountNumber" }

func (accountRule) Validate(s string) bool {
	if s == "" {
		return true
	}

	const (
		minLength = 6
		maxLength = 17
	)

	return len(s) >= minLength && len(s) <= maxLength && isDigits(s)
}

type checkRule struct{}

func (checkRule) Name() string { return "CheckNumber" }

func (checkRule) Validate(s string) bool {
	if s == "" {
		return true
	}

	const maxLength = 6

	return len(s) < maxLength && isDigits(s)
}
