package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromValidator converts a go-playground validation error into a
// field-keyed ValidationError suitable for a 400 response.
func FromValidator(err error) *ValidationError {
	ve := &ValidationError{Fields: map[string]string{}}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Fields["non_field_errors"] = "invalid input"
		return ve
	}
	for _, fe := range fieldErrs {
		ve.Fields[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return ve
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "url":
		return "enter a valid URL"
	default:
		return "invalid value"
	}
}
