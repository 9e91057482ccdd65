package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/pkg/binder"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		status   int
		level    slog.Level
		contains string
	}{
		{
			name:     "http error",
			err:      handler.ErrNotFound,
			status:   http.StatusNotFound,
			level:    slog.LevelWarn,
			contains: "not_found",
		},
		{
			name:     "wrapped http error",
			err:      fmt.Errorf("lookup: %w", handler.ErrMethodNotAllowed),
			status:   http.StatusMethodNotAllowed,
			level:    slog.LevelWarn,
			contains: "method_not_allowed",
		},
		{
			name:     "validation error",
			err:      handler.ValidationErrorFromMap(map[string]string{"name": "field is required"}),
			status:   http.StatusBadRequest,
			level:    slog.LevelWarn,
			contains: "name: field is required",
		},
		{
			name:     "unsupported media type",
			err:      errors.Join(binder.ErrUnsupportedMediaType, errors.New("text/plain")),
			status:   http.StatusUnsupportedMediaType,
			level:    slog.LevelWarn,
			contains: "Unsupported",
		},
		{
			name:     "missing content type",
			err:      binder.ErrMissingContentType,
			status:   http.StatusUnsupportedMediaType,
			level:    slog.LevelWarn,
			contains: "Unsupported",
		},
		{
			name:     "malformed json",
			err:      errors.Join(binder.ErrFailedToParseJSON, errors.New("unexpected EOF")),
			status:   http.StatusBadRequest,
			level:    slog.LevelWarn,
			contains: "could not be read",
		},
		{
			name:     "unexpected error",
			err:      errors.New("secret internals"),
			status:   http.StatusInternalServerError,
			level:    slog.LevelError,
			contains: "An error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.level, info.LogLevel)
			assert.Contains(t, info.Message, tt.contains)
			assert.NotContains(t, info.Message, "secret")
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	page := func(p handler.ErrorPageParams) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, "page %d %s %s", p.StatusCode, p.Error, p.RequestID)
			return err
		})
	}
	toast := func(p handler.ErrorToastParams) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, "<div>toast %s %s</div>", p.Type, p.Message)
			return err
		})
	}

	t.Run("renders error page with request id", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: page, ErrorToast: toast})

		req := plainRequest(http.MethodPost, "/contact")
		req = req.WithContext(requestid.WithContext(req.Context(), "req-42"))
		rec := newRecorder()
		eh(handler.NewContext(rec, req), binder.ErrMissingContentType)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "page 415")
		assert.Contains(t, rec.Body.String(), "req-42")
		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("falls back to plain text without page", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(logger.New(logger.WithOutput(io.Discard)), handler.ErrorHandlerConfig{})

		rec := newRecorder()
		eh(handler.NewContext(rec, plainRequest(http.MethodGet, "/")), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("renders toast for datastar requests", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		eh := handler.NewErrorHandler(logger.New(logger.WithOutput(buf)), handler.ErrorHandlerConfig{ErrorPage: page, ErrorToast: toast})

		rec := newRecorder()
		eh(handler.NewContext(rec, datastarRequest(http.MethodPost, "/contact")), handler.ErrBadRequest)

		body := rec.Body.String()
		require.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "toast warning bad_request")
		assert.Contains(t, body, "#toast-container")
		assert.Contains(t, buf.String(), `"is_datastar":true`)
	})
}

func TestNewJSONErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "unsupported media type", err: binder.ErrUnsupportedMediaType, status: http.StatusUnsupportedMediaType, code: "unsupported_media_type"},
		{name: "malformed body", err: binder.ErrFailedToParseJSON, status: http.StatusBadRequest, code: "bad_request"},
		{name: "http error", err: handler.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "internal_server_error"},
		{
			name:   "validation error keeps details",
			err:    handler.ValidationErrorFromMap(map[string]string{"name": "Name is required"}),
			status: http.StatusUnprocessableEntity,
			code:   "validation_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			eh := handler.NewJSONErrorHandler(logger.New(logger.WithOutput(io.Discard)))

			rec := newRecorder()
			eh(handler.NewContext(rec, plainRequest(http.MethodPost, "/api/contact")), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body handler.JSONResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
