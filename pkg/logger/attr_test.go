package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, time.Second, attr.Value.Duration())
}

func TestStringAttrs(t *testing.T) {
	assert.Equal(t, slog.String("component", "web"), logger.Component("web"))
	assert.Equal(t, slog.String("event", "submit"), logger.Event("submit"))
}

func TestFields(t *testing.T) {
	attr := logger.Fields("name", "email")
	require.Equal(t, "fields", attr.Key)
	assert.Equal(t, []string{"name", "email"}, attr.Value.Any())
}
