package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Letters, spaces, periods, hyphens and apostrophes: the character class a
// human name on a contact form is expected to use ("Dr. Sarah Chen",
// "Mary-Jane O'Brien").
var personNameRegex = regexp.MustCompile(`^[a-zA-Z\s.'-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("person_name", PersonName)
}

// PersonName validates that a string contains only valid name characters.
// Rejects digits and special symbols.
func PersonName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // required is a separate tag
	}
	return personNameRegex.MatchString(val)
}

// NormalizeEmail canonicalizes an email address for dispatch: surrounding
// whitespace stripped, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
