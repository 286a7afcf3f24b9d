package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-player-stats/internal/logger"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
)

// UserCacheRepository caches serialized users in Redis
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheRepository creates a new repository instance with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id int64) (*models.UserResponse, error) {
	key := userCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("key", key, "result", "miss")
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("key", key, "error", err)
		return nil, err
	}

	var user models.UserResponse
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Infow("key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("key", key, "result", "hit")
	return &user, nil
}

// Set caches the user with the repository TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user models.UserResponse) error {
	key := userCacheKey(user.ID)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("key", key, "result", "set", "error", err)
	return err
}

// Invalidate drops the cached entries of the given users.
func (r *UserCacheRepository) Invalidate(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, userCacheKey(id))
	}
	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("keys", keys, "result", "invalidated", "error", err)
	return err
}
