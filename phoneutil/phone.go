package phoneutil

import (
	"regexp"
	"strings"
)

var (
	// Formatting characters tolerated on input.
	formatting = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

	// Optional '+', then 7-15 digits with no leading zero.
	e164Like = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
)

// Validate reports whether phone looks like an E.164 number once spaces,
// hyphens and parentheses are stripped. Format-only: no geography or
// carrier checks.
func Validate(phone string) bool {
	return e164Like.MatchString(formatting.Replace(phone))
}

// Normalize canonicalizes a phone number to a '+'-prefixed digit string.
// Digits pass through literally: no country code is inferred for bare
// national numbers. The single exception is an Australian number written
// with its national leading zero after the country code ("+61 04..."),
// where that zero is dropped.
//
// Empty input returns empty output. Normalize does not validate; pair it
// with Validate when rejecting bad input matters.
func Normalize(phone string) string {
	if phone == "" {
		return ""
	}

	digits := strings.TrimPrefix(formatting.Replace(phone), "+")
	if strings.HasPrefix(digits, "610") {
		digits = "61" + digits[3:]
	}

	return "+" + digits
}
