// Package session stores the token -> account-id mapping behind the
// directory's session contract: Redis with TTL server-side, a plain map
// for tests and the client-held environment.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

type RedisSessionRepository struct {
	Client *redis.Client
}

func NewRedisSessionRepository(redisURL string) *RedisSessionRepository {
	return &RedisSessionRepository{
		Client: helpers.RedisHelper(redisURL),
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *RedisSessionRepository) CreateSession(token string, userId string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Set(ctx, sessionKey(token), userId, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) FindSession(token string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	userId, err := r.Client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	return userId, nil
}

func (r *RedisSessionRepository) DeleteSession(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
