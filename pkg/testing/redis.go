package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// RedisClient connects to the redis given by REDIS_HOST, REDIS_PORT and
// REDIS_PASS and flushes the test DB when the test ends.
func RedisClient(t *testing.T, db int) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	redisPort := os.Getenv("REDIS_PORT")
	if redisPort == "" {
		redisPort = "6379"
	}
	t.Logf("using redis: [%s:%s], db %d", redisHost, redisPort, db)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(redisHost, redisPort),
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})

	pingRes, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		t.Skipf("redis not reachable: %s", err)
	}
	t.Logf("redis ping res: %s", pingRes)

	t.Cleanup(func() {
		require.NoError(t, rdb.FlushDB(context.Background()).Err())
		_ = rdb.Close()
	})

	return ctx, rdb
}
