package detect

import (
	"regexp"
	"strings"

	"github.com/trustmatch/go-contacthash/emailutil"
)

// Kind classifies a raw input value for batch processing, where the
// caller does not declare what each record is.
type Kind string

const (
	KindEmail   Kind = "email"
	KindPhone   Kind = "phone"
	KindUnknown Kind = "unknown"
)

// Phone candidates: digits plus formatting characters, nothing else.
var phoneShape = regexp.MustCompile(`^[+\d\s\-()]+$`)

// Classify trims the value and classifies it. The email check wins: a
// value valid as both is reported as KindEmail. validEmail is injected
// so batch callers can substitute their own validator.
func Classify(value string, validEmail func(string) bool) Kind {
	value = strings.TrimSpace(value)
	switch {
	case validEmail(value):
		return KindEmail
	case phoneShape.MatchString(value):
		return KindPhone
	default:
		return KindUnknown
	}
}

// Detect classifies with the default syntactic email validator.
func Detect(value string) Kind {
	return Classify(value, func(s string) bool { return emailutil.Validate(s).Valid })
}
