// Package validator provides small, composable validation rules and the
// machinery to evaluate them.
//
// A Rule pairs a boolean Check function with error metadata (field, message,
// translation key and a sentinel Cause). Rules are grouped per field with
// Field and evaluated with ApplyChains, which reports only the first failing
// rule of each field while still checking every field:
//
//	err := validator.ApplyChains(
//	    validator.Field(
//	        validator.Required("name", name).WithMessage("Name is required"),
//	        validator.MinLen("name", name, 3),
//	    ),
//	    validator.Field(
//	        validator.Required("email", email),
//	        validator.ValidEmail("email", email),
//	    ),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := verrs.Messages() // field -> message
//	}
//
// # Error Handling
//
// ValidationErrors implements error and Is: errors.Is(err, ErrValidationFailed)
// matches any validation failure, and errors.Is(err, ErrFieldRequired) (or
// ErrInvalidLength, ErrInvalidFormat) matches when some field failed for that
// reason.
//
// The package holds no mutable state and is safe for concurrent use.
package validator
