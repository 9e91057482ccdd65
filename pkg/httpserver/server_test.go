package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func start(t *testing.T, ctx context.Context, srv *httpserver.Server) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not become ready")
	}
	return done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not return")
		return nil
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("serves until context is cancelled", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		srv := httpserver.New(
			httpserver.WithAddr("127.0.0.1:0"),
			httpserver.WithShutdownTimeout(time.Second),
			httpserver.WithLogger(logger.New(logger.WithOutput(buf))),
		)
		ctx, cancel := context.WithCancel(context.Background())
		done := start(t, ctx, srv)

		resp, err := http.Get("http://" + srv.Addr().String())
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, "ok", string(body))

		cancel()
		require.NoError(t, waitDone(t, done))
		assert.Contains(t, buf.String(), "http server started")
		assert.Contains(t, buf.String(), "http server stopped")
	})

	t.Run("manual shutdown", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
		done := start(t, context.Background(), srv)

		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, waitDone(t, done))
	})

	t.Run("second run fails", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
		ctx, cancel := context.WithCancel(context.Background())
		done := start(t, ctx, srv)

		err := srv.Run(ctx, okHandler())
		assert.ErrorIs(t, err, httpserver.ErrStart)
		assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

		cancel()
		require.NoError(t, waitDone(t, done))
	})

	t.Run("listen error", func(t *testing.T) {
		t.Parallel()
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
		err = srv.Run(context.Background(), okHandler())
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("shutdown before run is a no-op", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New()
		assert.NoError(t, srv.Shutdown(context.Background()))
		assert.Nil(t, srv.Addr())
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, ctx, srv)

	host, _, err := net.SplitHostPort(srv.Addr().String())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.NotPanics(t, func() { httpserver.New(httpserver.WithLogger(nil)) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	serve := func(h http.Handler) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		return rec
	}

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		rec := serve(httpserver.HealthCheckHandler(nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		rec := serve(httpserver.HealthCheckHandler(nil, func(context.Context) error { return nil }))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		h := httpserver.HealthCheckHandler(
			logger.New(logger.WithOutput(buf)),
			func(context.Context) error { return errors.New("down") },
		)
		rec := serve(h)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
		assert.Contains(t, buf.String(), "readiness check failed")
	})
}
