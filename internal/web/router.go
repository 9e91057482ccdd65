package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/internal/web/views"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the application router.
type RouterOptions struct {
	Logger  *slog.Logger
	Contact Mountable
}

// Router builds the application router: client IP resolution, request IDs,
// panic recovery and access logging around the contact routes and a /healthz
// check.
//
//	svc := web.NewContactService("Contact", contact.NewValidator(), web.OutputJSON, log, nil)
//	srv.Run(ctx, web.Router(web.RouterOptions{Logger: log, Contact: svc}))
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	r := chi.NewRouter()
	r.Use(
		clientip.Middleware,
		requestid.Middleware,
		accessLog(log),
		middleware.Recoverer,
	)

	r.NotFound(handler.Wrap(errorRoute(handler.ErrNotFound),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))
	r.MethodNotAllowed(handler.Wrap(errorRoute(handler.ErrMethodNotAllowed),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	if opts.Contact != nil {
		r.Mount("/", opts.Contact.Handle())
	}

	return r
}

func errorRoute(err error) handler.HandlerFunc[handler.Context, struct{}] {
	return func(handler.Context, struct{}) handler.Response {
		return handler.Error(err)
	}
}

// accessLog logs one record per request with its status and duration.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
