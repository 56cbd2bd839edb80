package mutatorsets

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

const (
	keyPrefix = "mutators:"

	// Enabled sets outlive the session they belong to by the same 7 days
	// sessions are kept
	defaultTTL = 7 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed enabled set repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
	}
}

// NewRedis creates a Redis-backed enabled set repository with the default TTL
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(sessionID string) string {
	return keyPrefix + sessionID
}

func (r *redisRepo) Get(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	data, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, dnderr.Wrap(err, "failed to get enabled mutators").
			WithMeta("session_id", sessionID)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, dnderr.Wrap(err, "failed to decode enabled mutators").
			WithMeta("session_id", sessionID)
	}
	if names == nil {
		names = []string{}
	}

	return names, nil
}

func (r *redisRepo) Save(ctx context.Context, sessionID string, names []string) error {
	if sessionID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}
	if names == nil {
		names = []string{}
	}

	data, err := json.Marshal(names)
	if err != nil {
		return dnderr.Wrap(err, "failed to encode enabled mutators").
			WithMeta("session_id", sessionID)
	}

	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return dnderr.Wrap(err, "failed to save enabled mutators").
			WithMeta("session_id", sessionID)
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return dnderr.Wrap(err, "failed to delete enabled mutators").
			WithMeta("session_id", sessionID)
	}
	return nil
}
