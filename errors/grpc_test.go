//go:build unit
// +build unit

package errors_test

import (
	"testing"

	play "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	liberrors "github.com/trustmatch/go-contacthash/errors"
)

func playgroundValidate(t *testing.T, i any) play.ValidationErrors {
	t.Helper()
	err := play.New().Struct(i)
	require.Error(t, err)
	verrs, ok := err.(play.ValidationErrors)
	require.True(t, ok)
	return verrs
}

func TestToGRPC_RoundTrip(t *testing.T) {
	in := liberrors.InvalidArgument().
		WithMessage("Please enter a valid email address").
		WithReason("invalid_email").
		WithDetail("input_kind", "email").
		WithViolations([]liberrors.FieldViolation{
			{Field: "email", Reason: "invalid_format", Description: "syntactic shape check failed"},
		})

	err := in.ToGRPC()
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "Please enter a valid email address", st.Message())

	out := liberrors.FromGRPC(err)
	assert.Equal(t, in.Code, out.Code)
	assert.Equal(t, in.Reason, out.Reason)
	assert.Equal(t, "email", out.Details["input_kind"])
	require.Len(t, out.Violations, 1)
	assert.Equal(t, "email", out.Violations[0].Field)
}

func TestFromGRPC_PlainError(t *testing.T) {
	out := liberrors.FromGRPC(assert.AnError)
	assert.Equal(t, codes.Unknown, out.Code)
}

func TestFromPlayground(t *testing.T) {
	type cfg struct {
		MaxRows int `validate:"gte=1"`
	}
	err := playgroundValidate(t, cfg{MaxRows: 0})
	e := liberrors.FromPlayground(err, map[string]string{"gte": "too_small_or_equal"})
	assert.Equal(t, codes.InvalidArgument, e.Code)
	require.Len(t, e.Violations, 1)
	assert.Equal(t, "too_small_or_equal", e.Violations[0].Reason)
}
