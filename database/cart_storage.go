package database

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CartStorage is the persistence adapter behind the cart store. Keys hold
// opaque payloads; a missing key yields (nil, nil). Implementations are
// swappable: Redis in production, in-memory for tests or single-node runs.
type CartStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

// RedisCartStorage implements CartStorage on a Redis client. Entries expire
// after the configured TTL, refreshed on every write.
type RedisCartStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStorage creates a new RedisCartStorage.
func NewRedisCartStorage(client *redis.Client, ttl time.Duration) *RedisCartStorage {
	return &RedisCartStorage{client: client, ttl: ttl}
}

func (s *RedisCartStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisCartStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

func (s *RedisCartStorage) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// MemoryCartStorage implements CartStorage with a process-local map. Writes
// are last-write-wins, matching the storage-layer semantics of the Redis
// adapter.
type MemoryCartStorage struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryCartStorage creates an empty MemoryCartStorage.
func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{entries: make(map[string][]byte)}
}

func (s *MemoryCartStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryCartStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	return nil
}

func (s *MemoryCartStorage) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
