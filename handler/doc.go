// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a Context and an already bound request value and
// returns a Response. Wrap turns it into an http.HandlerFunc, applying
// binders, decorators and an error handler:
//
//	submit := func(ctx handler.Context, req contact.RawInput) handler.Response {
//		user, err := contact.Validate(req)
//		var verrs contact.ValidationErrors
//		if errors.As(err, &verrs) {
//			return handler.JSONError(handler.ValidationErrorFromMap(verrs))
//		}
//		return handler.JSON(user)
//	}
//
//	r.Post("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, contact.RawInput](binder.JSON()),
//	))
//
// # Responses
//
//   - Templ, TemplStatus, TemplPartial, TemplMulti render templ components.
//     Requests issued by the DataStar client receive element patches over
//     server-sent events instead of a full document.
//   - JSON and JSONError render the {"data": ..., "error": ...} envelope.
//
// # Errors
//
// Binding and rendering failures go to the configured ErrorHandler.
// NewErrorHandler classifies them (HTTPError, ValidationError, binder errors),
// logs them with the request ID and renders an error page or toast.
package handler
