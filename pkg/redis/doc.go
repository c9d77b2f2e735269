// Package redis connects to an optional Redis server.
//
// Redis is used as the shared backend of the session rate limiter when more
// than one API replica runs. Leaving REDIS_URL empty keeps everything in
// process memory.
//
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//
//		store := ratelimiter.NewRedisStore(client)
//	}
//
// Connection failures are joined with the sentinel errors in errors.go and
// can be checked with errors.Is.
package redis
