package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level validation failure, shaped for the JSON
// errors array the frontend renders inline next to each input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldMessages maps struct field + failed tag to a user-facing message.
var fieldMessages = map[string]map[string]string{
	"Name": {
		"required":    "Name is required",
		"min":         "Name must be between 2 and 100 characters",
		"max":         "Name must be between 2 and 100 characters",
		"person_name": "Name contains invalid characters",
	},
	"Email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"Message": {
		"required": "Message is required",
		"min":      "Message must be between 10 and 2000 characters",
		"max":      "Message must be between 10 and 2000 characters",
	},
}

// FormatValidationErrors converts validator.ValidationErrors into one
// FieldError per violated field so the client can show all problems at once.
func FormatValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(e.Field()),
			Message: messageFor(e),
		})
	}
	return fieldErrors
}

func messageFor(e validator.FieldError) string {
	if byTag, ok := fieldMessages[e.Field()]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}
	return "Invalid value for " + strings.ToLower(e.Field())
}
