package contacthash

import (
	"google.golang.org/grpc/codes"

	"github.com/trustmatch/go-contacthash/emailutil"
	liberrors "github.com/trustmatch/go-contacthash/errors"
	"github.com/trustmatch/go-contacthash/hashutil"
	"github.com/trustmatch/go-contacthash/phoneutil"
)

// MsgPhoneInvalid is the user-facing message for phone validation
// failures. Email messages live in emailutil.
const MsgPhoneInvalid = "Please enter a valid phone number"

// ProcessEmail validates, normalizes and hashes one email address.
// The returned error carries the user-facing message and a field
// violation for structured callers.
func ProcessEmail(raw string) (hashutil.Result, error) {
	if v := emailutil.Validate(raw); !v.Valid {
		return hashutil.Result{}, liberrors.New(v.Message, codes.InvalidArgument, nil).
			WithReason("invalid_email").
			WithViolations([]liberrors.FieldViolation{
				{Field: "email", Reason: "invalid_format", Description: v.Message},
			})
	}
	return hashutil.HashValue(emailutil.Normalize(raw, emailutil.DefaultOptions())), nil
}

// ProcessPhone validates, normalizes and hashes one phone number.
func ProcessPhone(raw string) (hashutil.Result, error) {
	if !phoneutil.Validate(raw) {
		return hashutil.Result{}, liberrors.New(MsgPhoneInvalid, codes.InvalidArgument, nil).
			WithReason("invalid_phone").
			WithViolations([]liberrors.FieldViolation{
				{Field: "phone", Reason: "invalid_format", Description: MsgPhoneInvalid},
			})
	}
	return hashutil.HashValue(phoneutil.Normalize(raw)), nil
}
