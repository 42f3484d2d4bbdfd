package contacthash

import (
	"github.com/trustmatch/go-contacthash/emailutil"
	"github.com/trustmatch/go-contacthash/hashutil"
	"github.com/trustmatch/go-contacthash/phoneutil"
)

// EmailSession is caller-owned single-value state: the current input,
// the last validation error and the last successful result. Process and
// Clear return a new value instead of mutating, so sessions stay pure;
// do not share one logical session across concurrent flows.
type EmailSession struct {
	Input  string
	Err    string
	Result *hashutil.Result
}

// Process validates, normalizes and hashes Input. Empty input is a
// no-op. A validation failure records the user-facing message and keeps
// the previous Result; success clears Err and replaces Result.
func (s EmailSession) Process() EmailSession {
	if s.Input == "" {
		return s
	}
	if v := emailutil.Validate(s.Input); !v.Valid {
		s.Err = v.Message
		return s
	}

	s.Err = ""
	r := hashutil.HashValue(emailutil.Normalize(s.Input, emailutil.DefaultOptions()))
	s.Result = &r
	return s
}

// Clear resets the session to its initial empty state.
func (s EmailSession) Clear() EmailSession { return EmailSession{} }

// PhoneSession mirrors EmailSession for phone numbers.
type PhoneSession struct {
	Input  string
	Err    string
	Result *hashutil.Result
}

func (s PhoneSession) Process() PhoneSession {
	if s.Input == "" {
		return s
	}
	if !phoneutil.Validate(s.Input) {
		s.Err = MsgPhoneInvalid
		return s
	}

	s.Err = ""
	r := hashutil.HashValue(phoneutil.Normalize(s.Input))
	s.Result = &r
	return s
}

func (s PhoneSession) Clear() PhoneSession { return PhoneSession{} }
