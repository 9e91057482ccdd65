// Package contact validates and normalizes contact form submissions.
//
// A submission arrives as a RawInput holding the four form fields exactly as
// typed. Validate checks every field against its ordered rule chain and
// returns either a NormalizedUser or a ValidationErrors map, never both:
//
//	user, err := contact.Validate(contact.RawInput{
//	    Name:    "joão silva",
//	    Email:   "JOAO@Example.COM",
//	    Subject: "Hello there",
//	    Message: "Hi",
//	})
//	// user.Name == "João Silva", user.Email == "joao@example.com"
//
// Each field reports only its first failing rule; all fields are checked on
// every call. Validation is pure: the input is not modified and nothing is
// retained between calls.
package contact
