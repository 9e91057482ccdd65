// Package logger builds *slog.Logger instances from functional options.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler in a LogHandlerDecorator that pulls request-scoped attributes (such
// as the request ID) out of the context passed to each *Context log call.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "contactform"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "contact form submitted", logger.Component("contact"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Helpers return an empty slog.Attr for empty input, which slog drops.
package logger
