package fit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Result is a cached fit computation for one (user, job) pair.
type Result struct {
	Score     int       `json:"score"`
	Summary   string    `json:"summary"`
	Matched   []string  `json:"matched"`
	Gaps      []string  `json:"gaps"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists fit results keyed by (user, job). Get returns (nil, nil)
// when no entry exists; freshness is judged by the service, not the store,
// so stale entries are returned as-is (lazy expiry).
type Store interface {
	Get(ctx context.Context, userID, jobID uuid.UUID) (*Result, error)
	Put(ctx context.Context, userID, jobID uuid.UUID, result Result) error
}

type memoryStore struct {
	mu    sync.RWMutex
	items map[string]Result
}

// NewMemoryStore returns an in-process Store, suitable for tests and
// single-instance deployments.
func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string]Result)}
}

func (s *memoryStore) Get(_ context.Context, userID, jobID uuid.UUID) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.items[fitKey(userID, jobID)]
	if !ok {
		return nil, nil
	}
	return &result, nil
}

func (s *memoryStore) Put(_ context.Context, userID, jobID uuid.UUID, result Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[fitKey(userID, jobID)] = result
	return nil
}

// redisRetention bounds how long abandoned entries linger in Redis. It is
// housekeeping only: freshness is still decided by the service TTL.
const redisRetention = 7 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore returns a Redis-backed Store shared across instances.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client, prefix: "fit:score:"}
}

func (s *redisStore) Get(ctx context.Context, userID, jobID uuid.UUID) (*Result, error) {
	payload, err := s.client.Get(ctx, s.prefix+fitKey(userID, jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read fit cache: %w", err)
	}
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode fit cache entry: %w", err)
	}
	return &result, nil
}

func (s *redisStore) Put(ctx context.Context, userID, jobID uuid.UUID, result Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode fit cache entry: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+fitKey(userID, jobID), payload, redisRetention).Err(); err != nil {
		return fmt.Errorf("failed to write fit cache: %w", err)
	}
	return nil
}

func fitKey(userID, jobID uuid.UUID) string {
	return userID.String() + ":" + jobID.String()
}
