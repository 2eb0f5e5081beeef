package utils

import "strings"

// NormalizePhoneNumber converts a Kenyan mobile number into the
// international format the payment gateway expects: 254 followed by
// nine digits, no plus sign and no leading zero.
//
// Unrecognized inputs are returned digit-stripped and otherwise
// untouched; the gateway does its own validation.
func NormalizePhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "254"):
		return digits
	case len(digits) == 10 && strings.HasPrefix(digits, "07"):
		return "254" + digits[1:]
	case len(digits) == 10 && strings.HasPrefix(digits, "011"):
		return "254" + digits[1:]
	}
	return digits
}
