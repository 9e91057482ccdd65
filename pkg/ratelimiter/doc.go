// Package ratelimiter implements token bucket rate limiting.
//
// A Bucket holds Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each allowed request takes one token; a request that would
// drive the count negative is denied and leaves the bucket as it was.
// MemoryStore keeps buckets in process and sweeps idle ones.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity: 10, RefillRate: 1, RefillInterval: 6 * time.Second,
//	})
//	r.With(ratelimiter.Middleware(bucket, clientip.KeyFunc, tooMany)).Post("/contact", submit)
package ratelimiter
