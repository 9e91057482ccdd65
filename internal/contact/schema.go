package contact

import (
	"strings"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

const (
	NameMinLen    = 3
	SubjectMinLen = 5
)

const (
	MsgNameRequired    = "Name is required"
	MsgNameTooShort    = "Name must be at least 3 characters"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Invalid email format"
	MsgSubjectRequired = "Subject is required"
	MsgSubjectTooShort = "Subject must be at least 5 characters"
	MsgMessageRequired = "Message is required"
)

// schema returns one rule chain per field, in declared field order.
// Name rules run on the trimmed value since the stored name is trimmed; the
// other fields are checked as submitted.
func schema(raw RawInput) []validator.Chain {
	trimmedName := strings.TrimSpace(raw.Name)

	return []validator.Chain{
		validator.Field(
			validator.Required(FieldName, trimmedName).WithMessage(MsgNameRequired),
			validator.MinLen(FieldName, trimmedName, NameMinLen).WithMessage(MsgNameTooShort),
		),
		validator.Field(
			validator.Required(FieldEmail, raw.Email).WithMessage(MsgEmailRequired),
			validator.ValidEmail(FieldEmail, raw.Email).WithMessage(MsgEmailInvalid),
		),
		validator.Field(
			validator.Required(FieldSubject, raw.Subject).WithMessage(MsgSubjectRequired),
			validator.MinLen(FieldSubject, raw.Subject, SubjectMinLen).WithMessage(MsgSubjectTooShort),
		),
		validator.Field(
			validator.Required(FieldMessage, raw.Message).WithMessage(MsgMessageRequired),
		),
	}
}
