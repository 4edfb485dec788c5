package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
	StoreSQLite = "sqlite"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
	GenAI GenAIConfig
	Admin AdminConfig
}

type StoreConfig struct {
	Driver     string `env:"STORE_DRIVER,    default=memory"`
	Namespace  string `env:"STORE_NAMESPACE"`
	SQLitePath string `env:"SQLITE_PATH,     default=lumina.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lumina_blog"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// GenAIConfig configures the hosted model. Drafting endpoints are disabled
// when APIKey is empty.
type GenAIConfig struct {
	APIKey     string `env:"GENAI_API_KEY"`
	TextModel  string `env:"GENAI_TEXT_MODEL,  default=gemini-3-flash-preview"`
	ImageModel string `env:"GENAI_IMAGE_MODEL, default=gemini-2.5-flash-image"`
}

// AdminConfig is the bootstrap administrator returned while no users are stored.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@lumina.blog"`
	Password string `env:"ADMIN_PASSWORD, default=admin"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file when present, then configuration from environment
// variables using go-envconfig.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}

	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process decodes and validates configuration from the given lookuper.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}

	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	switch cfg.Store.Driver {
	case StoreMemory, StoreRedis, StoreMongo, StoreSQLite:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return &cfg, nil
}
