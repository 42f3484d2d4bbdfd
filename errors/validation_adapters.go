package errors

import (
	"fmt"

	play "github.com/go-playground/validator/v10"
)

// FromPlayground adapts go-playground/validator errors into an
// InvalidArgument with per-field violations.
func FromPlayground(err play.ValidationErrors, tagToReason map[string]string) ErrorResponse {
	violations := make([]FieldViolation, 0, len(err))
	for _, fe := range err {
		reason := tagToReason[fe.Tag()]
		if reason == "" {
			reason = "invalid"
		}

		field := fe.StructNamespace()
		if field == "" {
			field = fe.Field()
		}

		violations = append(violations, FieldViolation{
			Field:       field,
			Reason:      reason,
			Description: fmt.Sprintf("%s validation failed (%s)", field, fe.Tag()),
		})
	}
	return ValidationViolations(violations)
}
