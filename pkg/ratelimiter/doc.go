// Package ratelimiter provides token bucket rate limiting with HTTP middleware.
//
// A Bucket applies a Config (capacity, refill rate and refill interval) to
// keys held in a Store. MemoryStore keeps one golang.org/x/time/rate limiter
// per key and drops keys that have been idle for an hour. RedisStore runs the
// same bucket as a Lua script so replicas share one budget per key.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r.With(ratelimiter.Middleware(bucket, clientip.FromRequest)).Post("/jwt", issueToken)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response, and Retry-After on 429 responses.
// Store failures let the request through.
package ratelimiter
