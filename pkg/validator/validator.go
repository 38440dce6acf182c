package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError collates field errors into a single
// "field: reason; field: reason" message.
func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			message := fmt.Sprintf("%s: %s", fieldName(fieldError), reason(fieldError))
			messages = append(messages, message)
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "email":
		return "must be a valid email address"
	case "max":
		if fe.Kind().String() == "string" {
			return "is too long"
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must be positive"
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return "is not valid"
	}
}

func fieldName(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		return "field"
	}

	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
