package pii

import (
	"strings"
	"unicode"
)

// MaskEmail hides the local-part of an e-mail, keeping its first and last
// character for log readability. The domain stays visible.
//
//	"user@example.com" -> "u**r@example.com"
//	"ab@example.com"   -> "a*@example.com"
//	"x@example.com"    -> "x@example.com"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskKeepEnds([]rune(email))
	}
	return maskKeepEnds([]rune(email[:at])) + email[at:]
}

// MaskPhone hides phone digits, keeping the last four (or the last one
// when there are four or fewer digits). Formatting symbols survive.
//
//	"+1 (234) 567-8901" -> "+* (***) ***-8901"
//	"1234"              -> "***4"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return maskKeepEnds(runes)
	}

	keep := 4
	if total <= 4 {
		keep = 1
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsDigit(runes[i]) {
			continue
		}
		seen++
		if seen > keep {
			runes[i] = '*'
		}
	}
	return string(runes)
}

// MaskValue masks a value of unknown kind: e-mail rules when it contains
// an '@', phone rules otherwise.
func MaskValue(value string) string {
	if strings.ContainsRune(value, '@') {
		return MaskEmail(value)
	}
	return MaskPhone(value)
}

// maskKeepEnds stars out everything except the first and last rune.
func maskKeepEnds(runes []rune) string {
	switch n := len(runes); n {
	case 0:
		return ""
	case 1:
		return string(runes)
	case 2:
		return string(runes[0]) + "*"
	default:
		var b strings.Builder
		b.Grow(len(runes))
		b.WriteRune(runes[0])
		for i := 1; i < n-1; i++ {
			b.WriteByte('*')
		}
		b.WriteRune(runes[n-1])
		return b.String()
	}
}
