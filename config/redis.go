package config

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis dials REDIS_URL and pings it. The storefront keeps working
// without Redis, so failures are returned rather than fatal.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		Log.Warn("⚠️  REDIS_URL not set, using local Redis", zap.String("url", redisURL))
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	res, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	Log.Info("✅ Connected to Redis", zap.String("ping", res))

	return client, nil
}
