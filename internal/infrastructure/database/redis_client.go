package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client that backs the change feed.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (default: empty)
//   - REDIS_DB (default: 0)
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	db, _ := strconv.Atoi(getenvDefault("REDIS_DB", "0"))

	client := redis.NewClient(&redis.Options{
		Addr:         getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password:     getenvDefault("REDIS_PASSWORD", ""),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
