package contact

import (
	"strings"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

// ValidationErrors maps a field name to the message of the first rule the
// field failed. Fields that passed are absent.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range Fields {
		if msg, ok := e[field]; ok {
			parts = append(parts, field+": "+msg)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, validator.ErrValidationFailed) hold for any
// ValidationErrors value.
func (e ValidationErrors) Is(target error) bool {
	return target == validator.ErrValidationFailed
}

// Has reports whether field failed validation.
func (e ValidationErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}
