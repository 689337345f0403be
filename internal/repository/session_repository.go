package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a refresh session is absent or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository tracks issued refresh tokens by JTI so that a presented
// refresh token can be checked for validity beyond its signature.
type SessionRepository interface {
	Save(ctx context.Context, jti string, userID int64, ttl time.Duration) error
	Get(ctx context.Context, jti string) (int64, error)
}

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository returns a Redis-backed implementation.
func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(jti string) string {
	return "session:refresh:" + jti
}

func (r *sessionRepository) Save(ctx context.Context, jti string, userID int64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(jti), userID, ttl).Err()
}

func (r *sessionRepository) Get(ctx context.Context, jti string) (int64, error) {
	val, err := r.client.Get(ctx, sessionKey(jti)).Result()
	if err == redis.Nil {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, ErrSessionNotFound
	}
	return userID, nil
}
