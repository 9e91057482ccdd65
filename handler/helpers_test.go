package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/contactform/handler"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func failing(err error) templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error { return err })
}

func plainRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func datastarRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(""))
	req.Header.Set(handler.DataStarRequestHeader, "true")
	return req
}
