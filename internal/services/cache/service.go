package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/deepgram/simplechat/internal/infrastructure/redis"
	"github.com/deepgram/simplechat/pkg/logger"
)

// ReplyStore keeps replies by cache key until they expire
type ReplyStore interface {
	Set(ctx context.Context, key, reply string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
}

// keyValue is the part of the Redis service the store needs
type keyValue interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
}

type RedisStore struct {
	kv keyValue
}

type memoryEntry struct {
	reply     string
	expiresAt time.Time
}

// sweepInterval is how many Set calls pass between sweeps of expired
// entries in a MemoryStore
const sweepInterval = 128

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	sets    int
	now     func() time.Time
}

// Service caches chat replies so identical messages inside the TTL skip the
// completion call.
type Service struct {
	store ReplyStore
	ttl   time.Duration
}

// NewService returns nil when ttl is not positive; a nil *Service is a valid,
// always-missing cache.
func NewService(redisService *redis.Service, ttl time.Duration) *Service {
	if ttl <= 0 {
		logger.Info(logger.CACHE, "Reply cache disabled")
		return nil
	}

	var store ReplyStore
	if redisService != nil {
		logger.Info(logger.CACHE, "Using Redis for reply cache storage")
		store = &RedisStore{kv: redisService}
	} else {
		logger.Info(logger.CACHE, "Using in-memory reply cache storage")
		store = newMemoryStore()
	}

	return &Service{store: store, ttl: ttl}
}

func newMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Key derives the cache key for a message sent to model
func Key(model, message string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + message))
	return "Reply:" + hex.EncodeToString(sum[:])
}

// Lookup returns the cached reply for key, if any. Store errors count as a
// miss.
func (s *Service) Lookup(ctx context.Context, key string) (string, bool) {
	if s == nil {
		return "", false
	}

	reply, found, err := s.store.Get(ctx, key)
	if err != nil {
		logger.Warn(logger.CACHE, "Reply cache lookup failed: %v", err)
		return "", false
	}
	if found {
		logger.Debug(logger.CACHE, "Reply cache hit for %s", key)
	}
	return reply, found
}

// Store saves reply under key for the configured TTL
func (s *Service) Store(ctx context.Context, key, reply string) {
	if s == nil {
		return
	}

	if err := s.store.Set(ctx, key, reply, s.ttl); err != nil {
		logger.Warn(logger.CACHE, "Reply cache store failed: %v", err)
	}
}

// Redis Store implementation
func (rs *RedisStore) Set(ctx context.Context, key, reply string, ttl time.Duration) error {
	return rs.kv.Set(ctx, key, reply, ttl)
}

func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	return rs.kv.Get(ctx, key)
}

// Memory Store implementation
func (ms *MemoryStore) Set(ctx context.Context, key, reply string, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	ms.sets++
	if ms.sets%sweepInterval == 0 {
		ms.sweep(now)
	}
	ms.entries[key] = memoryEntry{reply: reply, expiresAt: now.Add(ttl)}
	return nil
}

// sweep drops every expired entry. Callers hold ms.mu.
func (ms *MemoryStore) sweep(now time.Time) {
	removed := 0
	for key, entry := range ms.entries {
		if !now.Before(entry.expiresAt) {
			delete(ms.entries, key)
			removed++
		}
	}
	if removed > 0 {
		logger.Debug(logger.CACHE, "Swept %d expired replies, %d left", removed, len(ms.entries))
	}
}

func (ms *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, exists := ms.entries[key]
	if !exists {
		return "", false, nil
	}
	if !ms.now().Before(entry.expiresAt) {
		delete(ms.entries, key)
		return "", false, nil
	}
	return entry.reply, true, nil
}
