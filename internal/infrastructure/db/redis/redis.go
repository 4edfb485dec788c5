package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	clientName  = "lumina-blog-studio"
	pingTimeout = 5 * time.Second
)

// Config holds the connection settings of the Redis-backed store.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return pingTimeout
	}
	return c.Timeout
}

func clientOptions(cfg Config) *redis.Options {
	return &redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		ClientName:  clientName,
		DialTimeout: cfg.timeout(),
	}
}

// Connect opens a Redis client for the store and fails unless the server
// answers a ping within the timeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(clientOptions(cfg))

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis store: no ping reply from %s within %s: %w", cfg.Addr, cfg.timeout(), err)
	}
	return client, nil
}
