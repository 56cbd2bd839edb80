package gamesessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

const (
	// Key patterns
	sessionKeyPrefix = "session:"
	realmSessionsKey = "realm:%s:sessions"

	// TTL for sessions (7 days)
	sessionTTL = 7 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client     redis.UniversalClient
	SessionTTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client     redis.UniversalClient
	sessionTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = sessionTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		sessionTTL: ttl,
	}
}

// NewRedis creates a Redis-backed session repository with the default TTL
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// Create creates a new session
func (r *redisRepository) Create(ctx context.Context, sess *entities.Session) error {
	if err := validate(sess); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return dnderr.Wrap(err, "failed to serialize session").WithMeta("session_id", sess.ID)
	}

	created, err := r.client.SetNX(ctx, sessionKeyPrefix+sess.ID, data, r.sessionTTL).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to create session").WithMeta("session_id", sess.ID)
	}
	if !created {
		return dnderr.AlreadyExistsf("session with ID %s already exists", sess.ID).
			WithMeta("session_id", sess.ID)
	}

	if err := r.client.SAdd(ctx, fmt.Sprintf(realmSessionsKey, sess.RealmID), sess.ID).Err(); err != nil {
		return dnderr.Wrap(err, "failed to index session").WithMeta("session_id", sess.ID)
	}

	return nil
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*entities.Session, error) {
	sessionKey := sessionKeyPrefix + id

	data, err := r.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("session not found: %s", id).WithMeta("session_id", id)
		}
		return nil, dnderr.Wrap(err, "failed to get session").WithMeta("session_id", id)
	}

	var sess entities.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, dnderr.Wrap(err, "failed to deserialize session").WithMeta("session_id", id)
	}

	return &sess, nil
}

// Update updates an existing session
func (r *redisRepository) Update(ctx context.Context, sess *entities.Session) error {
	if err := validate(sess); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return dnderr.Wrap(err, "failed to serialize session").WithMeta("session_id", sess.ID)
	}

	updated, err := r.client.SetXX(ctx, sessionKeyPrefix+sess.ID, data, r.sessionTTL).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to update session").WithMeta("session_id", sess.ID)
	}
	if !updated {
		return dnderr.NotFoundf("session not found: %s", sess.ID).WithMeta("session_id", sess.ID)
	}

	return nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	// Get session to clean up the realm index
	sess, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+id)
	pipe.SRem(ctx, fmt.Sprintf(realmSessionsKey, sess.RealmID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete session").WithMeta("session_id", id)
	}

	return nil
}

// GetByRealm retrieves all sessions for a realm
func (r *redisRepository) GetByRealm(ctx context.Context, realmID string) ([]*entities.Session, error) {
	sessionIDs, err := r.client.SMembers(ctx, fmt.Sprintf(realmSessionsKey, realmID)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get sessions for realm").WithMeta("realm_id", realmID)
	}

	return r.getMultipleSessions(ctx, sessionIDs)
}

// GetActiveByRealm retrieves the sessions of a realm that have not ended
func (r *redisRepository) GetActiveByRealm(ctx context.Context, realmID string) ([]*entities.Session, error) {
	sessions, err := r.GetByRealm(ctx, realmID)
	if err != nil {
		return nil, err
	}

	active := make([]*entities.Session, 0, len(sessions))
	for _, sess := range sessions {
		if isLive(sess) {
			active = append(active, sess)
		}
	}

	return active, nil
}

// getMultipleSessions retrieves multiple sessions by their IDs
func (r *redisRepository) getMultipleSessions(ctx context.Context, sessionIDs []string) ([]*entities.Session, error) {
	if len(sessionIDs) == 0 {
		return []*entities.Session{}, nil
	}

	keys := make([]string, len(sessionIDs))
	for i, id := range sessionIDs {
		keys[i] = sessionKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get multiple sessions")
	}

	sessions := make([]*entities.Session, 0, len(sessionIDs))
	for i, val := range values {
		// Expired sessions leave their ID in the index until the next delete
		if val == nil {
			continue
		}

		data, ok := val.(string)
		if !ok {
			continue
		}

		var sess entities.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			log.Printf("GameSessions: Skipping unreadable session %s: %v", sessionIDs[i], err)
			continue
		}

		sessions = append(sessions, &sess)
	}

	return sessions, nil
}
