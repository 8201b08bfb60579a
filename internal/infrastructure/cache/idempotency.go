package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrEntryNotFound = errors.New("idempotency entry not found")

// Entry is one remembered request: in progress until the handler returns, then
// the final response that gets replayed.
type Entry struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	RequestID   string    `json:"request_id"`
	RequestAtMS int64     `json:"request_at_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

type IdempotencyStore struct {
	rdb     *redis.Client
	lockTTL time.Duration
}

// NewIdempotencyStore keeps in-progress reservations for lockTTL.
func NewIdempotencyStore(rdb *redis.Client, lockTTL time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, lockTTL: lockTTL}
}

// Reserve stores e only if key is free and reports whether it did.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, e Entry) (bool, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, payload, s.lockTTL).Result()
}

func (s *IdempotencyStore) Load(ctx context.Context, key string) (Entry, error) {
	var e Entry
	v, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return e, ErrEntryNotFound
	}
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(v, &e); err != nil {
		return e, err
	}
	return e, nil
}

func (s *IdempotencyStore) Save(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, ttl).Err()
}

// Release forgets key so the client may retry the same request id.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
