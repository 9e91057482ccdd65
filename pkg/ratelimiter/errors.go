package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the bucket configuration is invalid.
	ErrInvalidConfig = errors.New("invalid rate limiter configuration")

	// ErrInvalidTokenCount indicates that the requested token count is not positive.
	ErrInvalidTokenCount = errors.New("invalid token count")
)
