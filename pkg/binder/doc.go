// Package binder decodes HTTP request bodies into Go structs.
//
// Each binder has the signature func(*http.Request, any) error so it can be
// plugged into handler.Wrap via handler.WithBinder:
//
//   - Form binds application/x-www-form-urlencoded and multipart/form-data
//     fields using `form:"..."` struct tags.
//   - JSON binds application/json bodies strictly: unknown fields, trailing
//     data and oversized bodies are rejected.
//
// Values are copied verbatim. Binders never trim, re-case or otherwise clean
// input; that is the validator's job.
//
// All failures wrap one of the package sentinel errors (ErrMissingContentType,
// ErrUnsupportedMediaType, ErrFailedToParseForm, ErrFailedToParseJSON) so
// callers can map them to HTTP status codes with errors.Is.
package binder
