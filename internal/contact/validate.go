package contact

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Validator validates RawInput and applies the field transforms.
// It is immutable after construction and safe for concurrent use.
type Validator struct {
	normalizeName  func(string) string
	normalizeEmail func(string) string
}

// Option configures a Validator.
type Option func(*Validator)

// WithLocale sets the language whose casing rules capitalize name words.
func WithLocale(tag language.Tag) Option {
	return func(v *Validator) {
		v.normalizeName = sanitizer.Compose(
			sanitizer.Trim,
			sanitizer.CapitalizeWordsIn(tag),
		)
	}
}

// NewValidator returns a Validator using language-neutral casing unless
// configured otherwise.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		normalizeEmail: sanitizer.ToLower,
	}
	WithLocale(language.Und)(v)

	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check runs every field's rule chain and returns the detailed failures,
// at most one per field. The result is empty when raw is valid.
func (v *Validator) Check(raw RawInput) validator.ValidationErrors {
	return validator.ExtractValidationErrors(validator.ApplyChains(schema(raw)...))
}

// Validate returns the normalized record for valid input. Otherwise it
// returns a zero record and a ValidationErrors error.
func (v *Validator) Validate(raw RawInput) (NormalizedUser, error) {
	if errs := v.Check(raw); !errs.IsEmpty() {
		return NormalizedUser{}, ValidationErrors(errs.Messages())
	}

	return NormalizedUser{
		Name:    v.normalizeName(raw.Name),
		Email:   v.normalizeEmail(raw.Email),
		Subject: raw.Subject,
		Message: raw.Message,
	}, nil
}

var defaultValidator = NewValidator()

// Validate validates raw with language-neutral casing rules.
func Validate(raw RawInput) (NormalizedUser, error) {
	return defaultValidator.Validate(raw)
}
