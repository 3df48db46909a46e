package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"onboard/internal/platform/redis"
	"onboard/pkg/platform/sentinel"
)

// defaultTTL keeps abandoned drafts from accumulating forever.
const defaultTTL = 30 * 24 * time.Hour

// RedisStore persists drafts in redis under a fixed key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore constructs a redis-backed draft store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "draft:",
		ttl:    defaultTTL,
	}
}

func (s *RedisStore) key(slot Slot) string {
	return s.prefix + string(slot)
}

func (s *RedisStore) Save(ctx context.Context, slot Slot, payload []byte) error {
	if err := s.client.Set(ctx, s.key(slot), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft %s: %w", slot, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, slot Slot) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.key(slot)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("draft %s: %w", slot, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load draft %s: %w", slot, err)
	}
	return payload, nil
}

func (s *RedisStore) Clear(ctx context.Context, slot Slot) error {
	if err := s.client.Del(ctx, s.key(slot)).Err(); err != nil {
		return fmt.Errorf("clear draft %s: %w", slot, err)
	}
	return nil
}
