package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedisStorage - connects to redis and checks the connection with a ping.
func NewRedisStorage(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w (close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}
