// Package validator adapts go-playground/validator to echo's Validator seam.
// Failures surface as a domain ValidationError so the centralized error
// handler renders a 422 with per-field messages.
package validator

import (
	"strings"

	domainerrors "beanwatch/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator used by every handler via c.Validate.
func New() *echoValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	return &echoValidator{validate: v}
}

// Validate implements echo.Validator.
func (ev *echoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		name := fieldName(fieldErr)
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = fieldMessage(name, fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

// fieldName derives the wire name (snake_case) from the struct field.
func fieldName(fieldErr playground.FieldError) string {
	var b strings.Builder
	for i, r := range fieldErr.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// fieldMessage renders one human-readable message per failed rule.
func fieldMessage(name string, fieldErr playground.FieldError) string {
	label := strings.ReplaceAll(name, "_", " ")

	switch fieldErr.Tag() {
	case "required":
		return "The " + label + " field is required."
	case "email":
		return "The " + label + " must be a valid email address."
	case "min":
		return "The " + label + " must be at least " + fieldErr.Param() + " characters."
	case "max":
		return "The " + label + " must not be greater than " + fieldErr.Param() + " characters."
	case "gte":
		return "The " + label + " must be at least " + fieldErr.Param() + "."
	case "lte":
		return "The " + label + " must not be greater than " + fieldErr.Param() + "."
	case "oneof":
		return "The selected " + label + " is invalid."
	default:
		return "The " + label + " is invalid."
	}
}
