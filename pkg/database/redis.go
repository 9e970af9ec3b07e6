package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis dials Redis from the given URL (redis://...). It returns nil
// when no URL is configured so callers can run without Redis-backed features.
func ConnectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return client
}

// MustConnectRedis is ConnectRedis but treats a missing URL as fatal; used
// when Redis is the primary document store rather than an optional extra.
func MustConnectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Fatal(fmt.Errorf("REDIS_URL is required when DATA_BACKEND=redis"))
	}
	return ConnectRedis(redisURL)
}
