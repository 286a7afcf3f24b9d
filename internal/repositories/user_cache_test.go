package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestUserCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	repo := NewUserCacheRepository(rdb, time.Minute)

	user := models.UserResponse{
		ID:       1,
		Username: "alice",
		Stats:    []models.StatsResponse{{StatsID: 1, Wins: 3, Losses: 1}},
	}

	t.Run("miss", func(t *testing.T) {
		cached, err := repo.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("set then get", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, user))

		cached, err := repo.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, &user, cached)

		ttl, err := rdb.TTL(ctx, "user:1").Result()
		assert.NoError(t, err)
		assert.True(t, ttl > 0 && ttl <= time.Minute)
	})

	t.Run("invalidate", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx, 1, 2))

		cached, err := repo.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("invalidate nothing", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx))
	})
}
