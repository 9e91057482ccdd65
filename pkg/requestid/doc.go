// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reads the X-Request-ID header, replaces missing or malformed
// values with a fresh UUID, stores the result in the request context and
// echoes it back in the response. FromContext reads it back, and
// LoggerExtractor plugs it into pkg/logger so every record logged with the
// request context carries a request_id attribute.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
