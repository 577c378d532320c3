package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// entry is one cached forecast day plus the instant it was fetched.
// Freshness is judged against FetchedAt by the cache, not by the store:
// stale entries must stay readable so they can be served when the upstream
// is down.
type entry struct {
	Forecast  Forecast  `json:"forecast"`
	FetchedAt time.Time `json:"fetched_at"`
}

// store is the persistence interface behind the weather cache.
// Get returns domain.ErrNotFound for unknown keys.
type store interface {
	Get(ctx context.Context, key string) (entry, error)
	Set(ctx context.Context, key string, e entry) error
}

// MemoryStore is the default in-process store: a plain map behind a mutex.
// Concurrent fetches for the same key may both write; last writer wins,
// which is fine because entries for the same key are interchangeable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

var _ store = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, key string) (entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return entry{}, domain.ErrNotFound
	}
	return e, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, e entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return nil
}

// redisRetention bounds how long stale entries survive in Redis. It must be
// much longer than the freshness TTL: entries between the TTL and the
// retention window are the stale-fallback pool.
const redisRetention = 7 * 24 * time.Hour

// RedisStore keeps cache entries in Redis so they survive restarts and are
// shared between replicas. Values are JSON-marshalled entries.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a RedisStore over an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

var _ store = (*RedisStore)(nil)

func (s *RedisStore) Get(ctx context.Context, key string) (entry, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entry{}, domain.ErrNotFound
		}
		return entry{}, fmt.Errorf("weather.RedisStore.Get: %w", err)
	}
	var e entry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		return entry{}, fmt.Errorf("weather.RedisStore.Get: unmarshal: %w", err)
	}
	return e, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, e entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("weather.RedisStore.Set: marshal: %w", err)
	}
	if err := s.client.Set(ctx, key, data, redisRetention).Err(); err != nil {
		return fmt.Errorf("weather.RedisStore.Set: %w", err)
	}
	return nil
}
