package ratelimiter

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type keyLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// MemoryStore keeps one rate.Limiter per key in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	limiters map[string]*keyLimiter

	now             func() time.Time
	cleanupInterval time.Duration
	staleAfter      time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the cleanup interval for removing stale limiters.
// Set to 0 to disable automatic cleanup.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates a new in-memory store with optional cleanup.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		limiters:        make(map[string]*keyLimiter),
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		staleAfter:      time.Hour,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// ConsumeTokens takes tokens from the limiter of key. A zero token count
// only reports the current state.
func (ms *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	kl, ok := ms.limiters[key]
	if !ok {
		kl = &keyLimiter{limiter: rate.NewLimiter(config.Limit(), config.Capacity)}
		ms.limiters[key] = kl
	}
	kl.lastAccess = now

	allowed := tokens == 0 || kl.limiter.AllowN(now, tokens)
	available := kl.limiter.TokensAt(now)

	remaining = int(math.Floor(available))
	if !allowed {
		remaining -= tokens
	}

	return remaining, now.Add(untilNextToken(available, kl.limiter.Limit())), nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.limiters, key)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() { close(ms.stopCleanup) })
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeStale()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeStale() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, kl := range ms.limiters {
		if now.Sub(kl.lastAccess) > ms.staleAfter {
			delete(ms.limiters, key)
		}
	}
}

// untilNextToken is the time until available reaches the next whole token.
func untilNextToken(available float64, limit rate.Limit) time.Duration {
	if limit <= 0 {
		return 0
	}
	missing := math.Floor(available) + 1 - available
	return time.Duration(missing / float64(limit) * float64(time.Second))
}
