package validator

import "github.com/go-playground/validator/v10"

var v = validator.New()

func Instance() *validator.Validate {
	return v
}

// Validate returns field->reason codes, or nil when i is valid.
func Validate(i any) map[string]string {
	err := v.Struct(i)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_error": "validation_failed"}
	}

	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = mapTagToCode(e.Tag())
	}
	return out
}
