package contact

// Field names as they appear in forms, JSON bodies and ValidationErrors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Fields lists the form fields in declared order.
var Fields = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}

// RawInput holds the form values as typed by the user.
type RawInput struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// Value returns the raw value of the named field.
func (r RawInput) Value(field string) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldSubject:
		return r.Subject
	case FieldMessage:
		return r.Message
	}
	return ""
}

// NormalizedUser is the outcome of a successful validation.
type NormalizedUser struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Subject string `json:"subject" yaml:"subject"`
	Message string `json:"message" yaml:"message"`
}

// Input converts the record back to a RawInput, as if resubmitted verbatim.
func (u NormalizedUser) Input() RawInput {
	return RawInput(u)
}
