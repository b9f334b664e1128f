package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

var validate = validator.New()

// Validate runs struct-tag validation and converts failures into a
// field-keyed ValidationError.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]any, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldKey(fieldErr)] = "failed on " + fieldErr.Tag()
	}
	return apperrors.NewValidationError("validation failed", details)
}

func fieldKey(fieldErr validator.FieldError) string {
	// Field() yields the Go name; fall back to snake_case to match payloads.
	return toSnake(fieldErr.Field())
}

func toSnake(name string) string {
	var b strings.Builder
	prevUpper := false
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !prevUpper {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			prevUpper = true
			continue
		}
		b.WriteRune(r)
		prevUpper = false
	}
	return b.String()
}
