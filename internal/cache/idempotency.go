package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Record captures the reply produced for one idempotency key so a replayed
// submission can return the original outcome without reaching the upstream
// again.
type Record struct {
	Key         string          `json:"key"`
	StatusCode  int             `json:"statusCode"`
	Body        json.RawMessage `json:"body"`
	ContentType string          `json:"contentType"`
	CompletedAt time.Time       `json:"completedAt"`
}

// IdempotencyStore persists completed event submissions keyed by the
// caller-supplied Idempotency-Key header. Get returns nil, nil on a miss.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*Record, error)
	Put(ctx context.Context, rec Record) error
}

type redisIdempotencyStore struct {
	client *RedisClient
	prefix string
	ttl    time.Duration
}

func NewIdempotencyStore(redisClient *RedisClient, ttl time.Duration) IdempotencyStore {
	return &redisIdempotencyStore{
		client: redisClient,
		prefix: "idem:",
		ttl:    ttl,
	}
}

func (s *redisIdempotencyStore) key(k string) string {
	return s.prefix + k
}

func (s *redisIdempotencyStore) Get(ctx context.Context, key string) (*Record, error) {
	data, err := s.client.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // miss
		}
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &rec, nil
}

func (s *redisIdempotencyStore) Put(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return s.client.client.Set(ctx, s.key(rec.Key), data, s.ttl).Err()
}

type memoryRecord struct {
	rec       Record
	expiresAt time.Time
}

// MemoryIdempotencyStore backs environments that run without Redis. Expired
// entries are dropped lazily on read.
type MemoryIdempotencyStore struct {
	mu   sync.RWMutex
	recs map[string]memoryRecord
	ttl  time.Duration
}

func NewMemoryIdempotencyStore(ttl time.Duration) *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{
		recs: make(map[string]memoryRecord),
		ttl:  ttl,
	}
}

func (s *MemoryIdempotencyStore) Get(_ context.Context, key string) (*Record, error) {
	s.mu.RLock()
	entry, exists := s.recs[key]
	s.mu.RUnlock()

	if !exists {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.recs, key)
		s.mu.Unlock()
		return nil, nil
	}

	rec := entry.rec
	return &rec, nil
}

func (s *MemoryIdempotencyStore) Put(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs[rec.Key] = memoryRecord{
		rec:       rec,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}
