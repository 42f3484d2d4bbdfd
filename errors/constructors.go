package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// Newf is a formatted constructor with reason.
func Newf(code codes.Code, reason, format string, a ...any) ErrorResponse {
	return New(fmt.Sprintf(format, a...), code, nil).WithReason(reason)
}

// LimitExceeded(name, limit) -> 429/ResourceExhausted with the limit value
// preserved as a machine-readable detail.
func LimitExceeded(name string, limit int) ErrorResponse {
	return ResourceExhausted().
		WithReason("limit_exceeded").
		WithDetail(name, fmt.Sprintf("%d", limit))
}
