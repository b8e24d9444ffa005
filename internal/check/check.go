// Package check validates configuration structs against their `validate`
// struct tags.
package check

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes the first invalid field of a struct
type FieldError struct {
	Field   string
	Message string
}

// Struct validates s and returns its first invalid field, or nil.
// Fields are reported in declaration order.
func Struct(s any) *FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return &FieldError{Message: err.Error()}
	}
	fe := fields[0]
	return &FieldError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " constraint"
	}
}
