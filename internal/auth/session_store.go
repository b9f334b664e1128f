package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore is the allowlist of live refresh sessions. A refresh token is
// only honored while its session id resolves here; revoking the session
// invalidates the token regardless of its JWT expiry.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, accountID int64, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (int64, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore backs the session allowlist with Redis TTL keys.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Put(ctx context.Context, sessionID string, accountID int64, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, accountID, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (int64, bool, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	accountID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return accountID, true, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
