package validator

import (
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	syntaxOnce  sync.Once
	syntaxCheck *playground.Validate
)

func syntax() *playground.Validate {
	syntaxOnce.Do(func() {
		syntaxCheck = playground.New()
	})
	return syntaxCheck
}

// ValidEmail validates that a string is a syntactically valid email address.
// Surrounding whitespace is not tolerated.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) != value || value == "" {
				return false
			}
			return syntax().Var(value, "email") == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
			Cause: ErrInvalidFormat,
		},
	}
}
