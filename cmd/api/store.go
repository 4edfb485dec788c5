package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lumina/blog-studio/internal/core/ports"
	"github.com/lumina/blog-studio/internal/infrastructure/db/mongo"
	"github.com/lumina/blog-studio/internal/infrastructure/db/redis"
	"github.com/lumina/blog-studio/internal/infrastructure/db/sqlite"
	"github.com/lumina/blog-studio/internal/infrastructure/memory"
	"github.com/lumina/blog-studio/internal/pkg/config"
)

// backend is the selected key-value store plus what the readiness probe
// checks and what shutdown releases.
type backend struct {
	store     ports.KeyValueStore
	readiness map[string]ports.Pinger
	close     func(context.Context) error
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	switch cfg.Store.Driver {
	case config.StoreRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		s := redis.NewStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("using redis store")
		return &backend{
			store:     s,
			readiness: map[string]ports.Pinger{"redis": s},
			close:     func(context.Context) error { return client.Close() },
		}, nil

	case config.StoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		s := mongo.NewStore(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")
		return &backend{
			store:     s,
			readiness: map[string]ports.Pinger{"mongodb": s},
			close:     client.Disconnect,
		}, nil

	case config.StoreSQLite:
		s, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("using sqlite store")
		return &backend{
			store:     s,
			readiness: map[string]ports.Pinger{"sqlite": s},
			close:     func(context.Context) error { return s.Close() },
		}, nil

	case config.StoreMemory:
		log.Warn().Msg("using in-memory store; data is lost on restart")
		return &backend{
			store:     memory.NewStore(),
			readiness: map[string]ports.Pinger{},
			close:     func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
