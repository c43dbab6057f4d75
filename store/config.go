package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/internal/cacheinfra"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
)

// Driver selects the store implementation built by New.
type Driver = cacheinfra.Driver

const (
	DriverMemory     = cacheinfra.DriverMemory
	DriverFilesystem = cacheinfra.DriverFilesystem
	DriverRedis      = cacheinfra.DriverRedis
	DriverSQL        = cacheinfra.DriverSQL
	DriverNone       = cacheinfra.DriverNone
)

// DefaultExpiration is one week.
const DefaultExpiration = cacheinfra.DefaultExpiration

// Config exposes store configuration options for consumers of the store package.
type Config struct {
	Driver             Driver
	Expiration         time.Duration
	Path               string
	Capacity           int
	NumShards          int
	EvictionPercentage int
	EvictionInterval   time.Duration
	KeyPrefix          string

	// Redis is required by DriverRedis.
	Redis redis.UniversalClient
	// DB is required by DriverSQL.
	DB *bun.DB

	// Now overrides the clock used to stamp and age snapshots.
	Now    func() time.Time
	Logger *slog.Logger
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// New constructs the store selected by cfg.Driver.
func New(ctx context.Context, cfg Config) (catalog.Store, error) {
	internal := cfg.toInternal()
	if err := internal.Validate(); err != nil {
		return nil, err
	}

	opts := []cacheinfra.Option{
		cacheinfra.WithClock(cfg.Now),
		cacheinfra.WithLogger(cfg.Logger),
	}

	switch cfg.Driver {
	case DriverFilesystem:
		return checked(cacheinfra.NewFilesystemStore(internal, opts...))
	case DriverRedis:
		return checked(cacheinfra.NewRedisStore(cfg.Redis, internal, opts...))
	case DriverSQL:
		return checked(cacheinfra.NewSQLStore(ctx, cfg.DB, internal, opts...))
	case DriverNone:
		return cacheinfra.NewNoopStore(), nil
	default:
		return checked(cacheinfra.NewMemoryStore(internal, opts...))
	}
}

// checked keeps a typed nil store from escaping as a non-nil interface.
func checked[S catalog.Store](s S, err error) (catalog.Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemory constructs an in-process store with the default configuration and the given expiration.
func NewMemory(expiration time.Duration) (catalog.Store, error) {
	cfg := DefaultConfig()
	cfg.Expiration = expiration
	return New(context.Background(), cfg)
}

// NewFilesystem constructs a file backed store rooted at path.
func NewFilesystem(path string, expiration time.Duration) (catalog.Store, error) {
	cfg := DefaultConfig()
	cfg.Driver = DriverFilesystem
	cfg.Path = path
	cfg.Expiration = expiration
	return New(context.Background(), cfg)
}

// NewNoop constructs a store that never retains snapshots.
func NewNoop() catalog.Store {
	return cacheinfra.NewNoopStore()
}

func (c Config) toInternal() cacheinfra.Config {
	driver := c.Driver
	if driver == "" {
		driver = DriverMemory
	}

	return cacheinfra.Config{
		Driver:             driver,
		Expiration:         c.Expiration,
		Path:               c.Path,
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
		KeyPrefix:          c.KeyPrefix,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Driver:             cfg.Driver,
		Expiration:         cfg.Expiration,
		Path:               cfg.Path,
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
		KeyPrefix:          cfg.KeyPrefix,
	}
}
