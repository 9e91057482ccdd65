package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies.
//
// Struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Untagged exported fields bind to their lower-cased name. Values are bound
// verbatim; whitespace and case are left for validation to judge.
//
// Example:
//
//	type SubmitRequest struct {
//		Name    string `form:"name"`
//		Message string `form:"message"`
//	}
//
//	http.HandleFunc("/contact", handler.Wrap(h,
//		handler.WithBinder[handler.Context, SubmitRequest](binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		const expected = "application/x-www-form-urlencoded or multipart/form-data"

		mt, params, err := mediaType(r, expected)
		if err != nil {
			return err
		}

		var values map[string][]string

		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, expected)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
