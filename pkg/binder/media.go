package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// mediaType returns the request media type without parameters.
func mediaType(r *http.Request, expected string) (string, map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", nil, fmt.Errorf("%w: expected %s", ErrMissingContentType, expected)
	}

	mt, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil, fmt.Errorf("%w: malformed content type %q", ErrUnsupportedMediaType, contentType)
	}
	return mt, params, nil
}
