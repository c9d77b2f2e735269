package ratelimiter

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and consumes a bucket kept in a hash in one round
// trip. Token counts travel as strings since Lua numbers are truncated to
// integers on the way back.
var tokenBucketScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local ttl = tonumber(ARGV[5])

local state = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = capacity
	ts = now
end

tokens = math.min(capacity, tokens + math.max(0, now - ts) * rate)

local allowed = 0
if tokens >= requested then
	tokens = tokens - requested
	allowed = 1
end

redis.call("HSET", KEYS[1], "tokens", tostring(tokens), "ts", now)
redis.call("PEXPIRE", KEYS[1], ttl)
return {allowed, tostring(tokens)}
`)

// RedisStore keeps buckets in Redis so that every replica shares one budget
// per key.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces bucket keys. Default "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) { rs.prefix = prefix }
}

// WithRedisClock replaces time.Now as the source of refill timestamps.
func WithRedisClock(now func() time.Time) RedisStoreOption {
	return func(rs *RedisStore) {
		if now != nil {
			rs.now = now
		}
	}
}

// NewRedisStore returns a Store backed by client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error) {
	now := rs.now()
	perMilli := float64(config.Limit()) / 1000
	if perMilli <= 0 || math.IsInf(perMilli, 0) {
		return 0, time.Time{}, fmt.Errorf("%w: refill rate %v", ErrInvalidConfig, config.Limit())
	}
	ttl := time.Duration(float64(config.Capacity)/float64(config.Limit())*float64(time.Second)) + time.Second

	res, err := tokenBucketScript.Run(ctx, rs.client, []string{rs.prefix + key},
		config.Capacity, perMilli, now.UnixMilli(), tokens, ttl.Milliseconds(),
	).Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("consume tokens: %w", err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("consume tokens: unexpected reply %v", res)
	}

	allowed, _ := res[0].(int64)
	raw, _ := res[1].(string)
	available, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("consume tokens: %w", err)
	}

	remaining = int(math.Floor(available))
	if allowed == 0 {
		remaining -= tokens
	}

	return remaining, now.Add(untilNextToken(available, config.Limit())), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return fmt.Errorf("reset bucket: %w", err)
	}
	return nil
}
