// Package validator adapts go-playground/validator to Echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"food/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that names fields after their json or query tags.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// Message describes the first failing field of a validation error.
func Message(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Invalid request"
	}

	field := validationErrors[0]
	switch field.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field.Field(), field.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field.Field(), field.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field.Field(), field.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field.Field())
	default:
		return fmt.Sprintf("%s is invalid", field.Field())
	}
}
