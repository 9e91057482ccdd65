package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/internal/contact"
	"github.com/dmitrymomot/contactform/internal/web/views"
	"github.com/dmitrymomot/contactform/pkg/binder"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
)

// ContactService serves the contact form page, its submit action and the
// JSON API.
type ContactService struct {
	title        string
	validator    *contact.Validator
	output       OutputFormat
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	jsonErrors   handler.ErrorHandler[handler.Context]
	limiter      *ratelimiter.Bucket
}

// ContactOption configures optional ContactService behaviour.
type ContactOption func(*ContactService)

// WithRateLimit limits submissions per client IP. GET requests are not limited.
func WithRateLimit(b *ratelimiter.Bucket) ContactOption {
	return func(s *ContactService) { s.limiter = b }
}

func NewContactService(
	title string,
	validator *contact.Validator,
	output OutputFormat,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...ContactOption,
) *ContactService {
	if validator == nil {
		validator = contact.NewValidator()
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("contact"))
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}
	s := &ContactService{
		title:        title,
		validator:    validator,
		output:       output,
		log:          log,
		errorHandler: errorHandler,
		jsonErrors:   handler.NewJSONErrorHandler(log),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ContactService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimit(s.errorHandler))
		r.Post("/contact", handler.Wrap(s.submit,
			handler.WithBinder[handler.Context, contact.RawInput](binder.Form()),
			handler.WithErrorHandler[handler.Context, contact.RawInput](s.errorHandler),
		))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimit(s.jsonErrors))
		r.Post("/api/contact", handler.Wrap(s.api,
			handler.WithBinder[handler.Context, contact.RawInput](binder.JSON()),
			handler.WithErrorHandler[handler.Context, contact.RawInput](s.jsonErrors),
		))
	})

	return r
}

// rateLimit returns the limiter middleware, or a pass-through when no limiter
// is configured. Denied requests are rendered by eh.
func (s *ContactService) rateLimit(eh handler.ErrorHandler[handler.Context]) func(http.Handler) http.Handler {
	if s.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	deny := handler.Wrap(errorRoute(handler.ErrTooManyRequests),
		handler.WithErrorHandler[handler.Context, struct{}](eh),
	)
	return ratelimiter.Middleware(s.limiter, clientip.KeyFunc, deny)
}

func (s *ContactService) page(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(views.Page(views.PageParams{Title: s.title}))
}

// submit validates the posted form. DataStar requests get the form and the
// output panel patched in place, plain requests get the whole page.
func (s *ContactService) submit(ctx handler.Context, req contact.RawInput) handler.Response {
	form := views.FormParams{Values: req}
	status := http.StatusOK
	var output string

	user, err := s.validate(ctx, req)
	if err != nil {
		var verrs contact.ValidationErrors
		if !errors.As(err, &verrs) {
			return handler.Error(err)
		}
		form.Errors = verrs
		status = http.StatusUnprocessableEntity
	} else {
		output, err = s.output.Render(user)
		if err != nil {
			return handler.Error(err)
		}
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplMulti(
			handler.Patch(views.Form(form)),
			handler.Patch(views.Output(output)),
		)
	}
	return handler.TemplStatus(status, views.Page(views.PageParams{
		Title:  s.title,
		Form:   form,
		Output: output,
	}))
}

func (s *ContactService) api(ctx handler.Context, req contact.RawInput) handler.Response {
	user, err := s.validate(ctx, req)
	if err != nil {
		var verrs contact.ValidationErrors
		if errors.As(err, &verrs) {
			return handler.JSONError(handler.ValidationErrorFromMap(verrs))
		}
		return handler.Error(err)
	}
	return handler.JSON(user)
}

// validate runs the validator and logs the outcome. Field values are never
// logged, only the names of the fields that failed.
func (s *ContactService) validate(ctx handler.Context, req contact.RawInput) (contact.NormalizedUser, error) {
	user, err := s.validator.Validate(req)

	var verrs contact.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		s.log.InfoContext(ctx, "contact form rejected",
			logger.Event("contact_rejected"),
			logger.Fields(failedFields(verrs)...),
		)
	case err != nil:
		s.log.ErrorContext(ctx, "contact form validation failed", logger.Error(err))
	default:
		s.log.InfoContext(ctx, "contact form accepted", logger.Event("contact_accepted"))
	}
	return user, err
}

// failedFields lists the failed fields in form order.
func failedFields(errs contact.ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, f := range contact.Fields {
		if errs.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
