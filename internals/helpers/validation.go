package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field name to its validation messages.
type FieldErrors map[string][]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, k+": "+strings.Join(v, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// NewValidator reports fields by their json name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct returns FieldErrors (or nil) for s.
func ValidateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range ves {
		out.Add(fe.Field(), messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required", "required_with", "required_if":
		return fmt.Sprintf("The %s field is required.", f)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid. Allowed: %s.", f, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", f, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", f, fe.Param())
	case "lte", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", f, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", f, fe.Param())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", f)
	case "uuid", "uuid4":
		return fmt.Sprintf("The %s must be a valid UUID.", f)
	case "url":
		return fmt.Sprintf("The %s must be a valid URL.", f)
	case "gtefield":
		return fmt.Sprintf("The %s must be after or equal to %s.", f, fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid (%s).", f, fe.Tag())
	}
}
