package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	appName        = "lumina-blog-studio"
	connectTimeout = 10 * time.Second
)

// Config holds the connection settings of the MongoDB-backed store.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return connectTimeout
	}
	return c.Timeout
}

func clientOptions(cfg Config) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(cfg.timeout())
}

// Connect dials MongoDB and returns the client with the database that holds
// the kv collection. The server must answer a ping within the timeout.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Database == "" {
		return nil, nil, fmt.Errorf("mongo store: database name is required")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo store: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo store: no ping reply within %s: %w", cfg.timeout(), err)
	}
	return client, client.Database(cfg.Database), nil
}
