package views

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/contactform/internal/contact"
)

// Element IDs targeted by datastar patches.
const (
	FormID   = "contact-form"
	OutputID = "output"
	ToastID  = "toast-container"
)

// DatastarScript is the client bundle the page loads.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

// FormParams holds what the form shows: the submitted values and the
// inline error for each failed field.
type FormParams struct {
	Action string
	Values contact.RawInput
	Errors contact.ValidationErrors
}

func (p FormParams) action() string {
	if p.Action == "" {
		return "/contact"
	}
	return p.Action
}

type PageParams struct {
	Title  string
	Form   FormParams
	Output string
}

func (p PageParams) title() string {
	if p.Title == "" {
		return "Contact"
	}
	return p.Title
}

type formField struct {
	name  string
	label string
	kind  string
}

var formFields = []formField{
	{name: contact.FieldName, label: "Name", kind: "text"},
	{name: contact.FieldEmail, label: "Email", kind: "email"},
	{name: contact.FieldSubject, label: "Subject", kind: "text"},
	{name: contact.FieldMessage, label: "Message", kind: "textarea"},
}

// submitAction is the datastar expression posting the form encoded as
// application/x-www-form-urlencoded.
func submitAction(action string) string {
	return "@post('" + action + "', {contentType: 'form'})"
}

func statusLine(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}
