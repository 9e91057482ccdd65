package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolve returns the client IP for r. Proxy headers are checked first:
// CF-Connecting-IP, then the first valid address in X-Forwarded-For, then
// X-Real-IP. RemoteAddr is the fallback. The result is a normalized IP or
// an empty string when nothing parses.
func Resolve(r *http.Request) string {
	if ip := normalize(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	for part := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if ip := normalize(part); ip != "" {
			return ip
		}
	}
	if ip := normalize(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
