package emailutil

import (
	"regexp"
	"strings"
)

// User-facing validation messages. Callers surface these verbatim.
const (
	MsgRequired = "Email address is required"
	MsgInvalid  = "Please enter a valid email address"
)

var (
	// Syntactic shape only: local@domain.tld with a final label of at
	// least two letters. No internationalized address support.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ValidationResult is the outcome of a syntactic email check.
// Message is a user-facing reason, empty when Valid.
type ValidationResult struct {
	Valid   bool
	Message string
}

// Options selects which normalization steps apply. All fields default to
// true via DefaultOptions; pass an explicit Options at every call site
// instead of relying on ambient defaults.
type Options struct {
	RemoveWhitespace   bool
	ConvertToLowercase bool
	RemoveDots         bool
	RemovePlusSign     bool
}

// DefaultOptions enables every normalization step.
func DefaultOptions() Options {
	return Options{
		RemoveWhitespace:   true,
		ConvertToLowercase: true,
		RemoveDots:         true,
		RemovePlusSign:     true,
	}
}

// Validate checks the syntactic shape of an email address.
func Validate(email string) ValidationResult {
	if email == "" {
		return ValidationResult{Message: MsgRequired}
	}
	if !emailPattern.MatchString(email) {
		return ValidationResult{Message: MsgInvalid}
	}
	return ValidationResult{Valid: true}
}

// Normalize canonicalizes an email address. Steps run in a fixed order:
// whitespace removal, lowercasing, then local-part dot removal and
// plus-suffix truncation. The dot and plus rules apply to every domain,
// not only gmail.com; the domain part is never rewritten.
//
// Empty input returns empty output. Input without an '@' passes through
// the whitespace and case steps only.
func Normalize(email string, opts Options) string {
	if email == "" {
		return ""
	}

	if opts.RemoveWhitespace {
		email = whitespacePattern.ReplaceAllString(email, "")
	}
	if opts.ConvertToLowercase {
		email = strings.ToLower(email)
	}

	at := strings.Index(email, "@")
	if at < 0 {
		return email
	}

	local, domain := email[:at], email[at+1:]
	if opts.RemoveDots {
		local = strings.ReplaceAll(local, ".", "")
	}
	if opts.RemovePlusSign {
		if plus := strings.Index(local, "+"); plus >= 0 {
			local = local[:plus]
		}
	}

	return local + "@" + domain
}
