package ratelimiter

import (
	"net/http"
	"strconv"
)

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(r *http.Request) string

// Middleware takes one token per request from the key's bucket and sets the
// X-RateLimit-* headers. Denied requests get a Retry-After header and are
// passed to deny. Limiter errors also go to deny.
func Middleware(b *Bucket, key KeyFunc, deny http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := b.Allow(r.Context(), key(r))
			if err != nil {
				deny.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				h.Set("Retry-After", strconv.Itoa(max(1, int(res.RetryAfter().Seconds()))))
				deny.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
