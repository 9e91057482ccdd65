package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *fakeClock, *ratelimiter.MemoryStore) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, clock, store
}

func TestNewBucket(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestBucket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}

	t.Run("denies after capacity and refills", func(t *testing.T) {
		t.Parallel()
		b, clock, _ := newBucket(t, cfg)

		for want := 2; want >= 0; want-- {
			res, err := b.Allow(ctx, "ip")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		clock.Advance(time.Second)
		res, err = b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("denied requests do not drain the bucket", func(t *testing.T) {
		t.Parallel()
		b, clock, _ := newBucket(t, cfg)

		_, err := b.AllowN(ctx, "ip", 3)
		require.NoError(t, err)
		for range 5 {
			res, err := b.Allow(ctx, "ip")
			require.NoError(t, err)
			assert.False(t, res.Allowed())
		}

		clock.Advance(2 * time.Second)
		res, err := b.AllowN(ctx, "ip", 2)
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		t.Parallel()
		b, clock, _ := newBucket(t, cfg)

		_, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		clock.Advance(time.Hour)

		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("partial intervals carry over between refills", func(t *testing.T) {
		t.Parallel()
		b, clock, _ := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: 10 * time.Second})
		start := clock.Now()

		_, err := b.AllowN(ctx, "ip", 2)
		require.NoError(t, err)

		clock.Advance(15 * time.Second)
		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		require.True(t, res.Allowed())
		assert.Equal(t, start.Add(20*time.Second), res.ResetAt)

		clock.Advance(5 * time.Second)
		res, err = b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed(), "the token due at 20s must be available")
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		b, _, store := newBucket(t, cfg)

		_, err := b.AllowN(ctx, "a", 3)
		require.NoError(t, err)
		res, err := b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2, store.Len())

		require.NoError(t, b.Reset(ctx, "a"))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		b, _, _ := newBucket(t, cfg)
		_, err := b.AllowN(ctx, "ip", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})
}

func TestResult(t *testing.T) {
	t.Parallel()
	allowed := ratelimiter.Result{Remaining: 0, ResetAt: time.Now().Add(time.Minute)}
	assert.Zero(t, allowed.RetryAfter())

	denied := ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Minute)}
	assert.Greater(t, denied.RetryAfter(), 50*time.Second)

	past := ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Minute)}
	assert.Zero(t, past.RetryAfter())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	h := ratelimiter.Middleware(b, func(*http.Request) string { return "k" }, deny)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("store down")
}

func (failingStore) Reset(context.Context, string) error { return nil }

func TestMiddleware_StoreError(t *testing.T) {
	t.Parallel()
	b, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	called := false
	h := ratelimiter.Middleware(b, func(*http.Request) string { return "k" },
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) }),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
