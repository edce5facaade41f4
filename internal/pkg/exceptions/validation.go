package exceptions

import (
	"strings"

	"delivery-hours-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError renders the first field failure from a
// validator.ValidationErrors into a client-facing message.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	return strings.ToLower(firstErr.Field()) + " " + validationMessage(firstErr)
}

func validationMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	message, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		message = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		message = strings.Replace(message, "%s", param, 1)
	}
	return message
}
