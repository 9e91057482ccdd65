package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/binder"
)

type contactForm struct {
	Name     string   `form:"name"`
	Email    string   `form:"email"`
	Subject  string   `form:"subject,omitempty"`
	Message  string   // untagged, binds to "message"
	Tags     []string `form:"tags"`
	Agree    bool     `form:"agree"`
	Page     *int     `form:"page"`
	Internal string   `form:"-"`
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm_URLEncoded(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{
			"name":     {"joão silva"},
			"email":    {"JOAO@Example.COM"},
			"subject":  {"Hello there"},
			"message":  {"Hi"},
			"tags":     {"a", "b"},
			"agree":    {"on"},
			"page":     {"2"},
			"Internal": {"nope"},
		})

		var form contactForm
		require.NoError(t, binder.Form()(req, &form))

		assert.Equal(t, "joão silva", form.Name)
		assert.Equal(t, "JOAO@Example.COM", form.Email)
		assert.Equal(t, "Hello there", form.Subject)
		assert.Equal(t, "Hi", form.Message)
		assert.Equal(t, []string{"a", "b"}, form.Tags)
		assert.True(t, form.Agree)
		require.NotNil(t, form.Page)
		assert.Equal(t, 2, *form.Page)
		assert.Empty(t, form.Internal)
	})

	t.Run("keeps values verbatim", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"name": {"  ana  maria "}, "message": {"line1\r\nline2"}})

		var form contactForm
		require.NoError(t, binder.Form()(req, &form))
		assert.Equal(t, "  ana  maria ", form.Name)
		assert.Equal(t, "line1\r\nline2", form.Message)
	})

	t.Run("missing fields stay empty", func(t *testing.T) {
		t.Parallel()

		var form contactForm
		require.NoError(t, binder.Form()(formRequest(url.Values{}), &form))
		assert.Equal(t, contactForm{}, form)
	})

	t.Run("ignores query string values", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"email": {"a@b.co"}})
		req.URL.RawQuery = "name=fromquery"

		var form contactForm
		require.NoError(t, binder.Form()(req, &form))
		assert.Empty(t, form.Name)
		assert.Equal(t, "a@b.co", form.Email)
	})

	t.Run("charset parameter is accepted", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"name": {"abc"}})
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

		var form contactForm
		require.NoError(t, binder.Form()(req, &form))
		assert.Equal(t, "abc", form.Name)
	})
}

func TestForm_Multipart(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "ana maria"))
	require.NoError(t, w.WriteField("email", "ana@example.com"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/contact", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	var form contactForm
	require.NoError(t, binder.Form()(req, &form))
	assert.Equal(t, "ana maria", form.Name)
	assert.Equal(t, "ana@example.com", form.Email)
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=x"))
		var form contactForm
		assert.ErrorIs(t, binder.Form()(req, &form), binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		var form contactForm
		assert.ErrorIs(t, binder.Form()(req, &form), binder.ErrUnsupportedMediaType)
	})

	t.Run("multipart without boundary", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data")
		var form contactForm
		assert.ErrorIs(t, binder.Form()(req, &form), binder.ErrFailedToParseForm)
	})

	t.Run("invalid typed value", func(t *testing.T) {
		t.Parallel()

		var form contactForm
		err := binder.Form()(formRequest(url.Values{"page": {"two"}}), &form)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
		assert.Contains(t, err.Error(), "Page")
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()

		var form contactForm
		assert.ErrorIs(t, binder.Form()(formRequest(url.Values{}), form), binder.ErrFailedToParseForm)
	})

	t.Run("pointer to non-struct", func(t *testing.T) {
		t.Parallel()

		var s string
		assert.ErrorIs(t, binder.Form()(formRequest(url.Values{}), &s), binder.ErrFailedToParseForm)
	})
}
