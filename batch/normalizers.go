package batch

import (
	"regexp"

	"github.com/trustmatch/go-contacthash/emailutil"
)

// Normalizers is the validator/normalizer pair the processor runs each
// value through. Injected so tests can substitute fakes without touching
// package globals.
type Normalizers interface {
	// ValidateEmail reports whether value is an acceptable email. It
	// drives both type detection and the pre-normalization re-check.
	ValidateEmail(value string) bool
	// NormalizeEmail canonicalizes an email already known to be valid.
	NormalizeEmail(value string) string
	// NormalizePhone canonicalizes a phone value, reporting false when
	// no usable form exists.
	NormalizePhone(value string) (string, bool)
}

// Default returns the production Normalizers.
func Default() Normalizers { return stdNormalizers{} }

type stdNormalizers struct{}

func (stdNormalizers) ValidateEmail(value string) bool {
	return emailutil.Validate(value).Valid
}

func (stdNormalizers) NormalizeEmail(value string) string {
	return emailutil.Normalize(value, emailutil.DefaultOptions())
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone applies the batch-path phone rule: 10-15 digits after
// stripping everything else; exactly 10 digits get a "+1" country code,
// longer values only the "+" prefix. This deliberately differs from
// phoneutil.Normalize, which never infers a country code; the two rules
// are kept independent on purpose.
func (stdNormalizers) NormalizePhone(value string) (string, bool) {
	digits := nonDigits.ReplaceAllString(value, "")
	switch {
	case len(digits) == 10:
		return "+1" + digits, true
	case len(digits) > 10 && len(digits) <= 15:
		return "+" + digits, true
	default:
		return "", false
	}
}
