package kvstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("key not found")

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Store is a durable string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Driver string `envconfig:"STORE_DRIVER" default:"sqlite"`
	// DSN is a file path for sqlite and a connection string for postgres.
	DSN   string `envconfig:"STORE_DSN" default:"storefront.db"`
	Redis RedisConfig
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB"`
	Prefix   string `envconfig:"REDIS_PREFIX" default:"storefront:"`
}

func New(ctx context.Context, cfg Config, log *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
		return NewSQLStore(ctx, cfg.Driver, cfg.DSN, log)
	case DriverRedis:
		return NewRedisStore(ctx, cfg.Redis, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
