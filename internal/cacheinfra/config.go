package cacheinfra

import (
	"log/slog"
	"time"
)

// Driver selects the backing implementation of a catalog store.
type Driver string

const (
	DriverMemory     Driver = "memory"
	DriverFilesystem Driver = "filesystem"
	DriverRedis      Driver = "redis"
	DriverSQL        Driver = "sql"
	DriverNone       Driver = "none"
)

// DefaultExpiration is the age after which a catalog snapshot must be fetched again.
const DefaultExpiration = 7 * 24 * time.Hour

// DefaultPath is where the filesystem store keeps its files.
const DefaultPath = "./cache/catalogs"

// Config holds the configuration shared by the catalog store implementations.
type Config struct {
	// Driver picks the store implementation. Default: memory
	Driver Driver

	// Expiration is the maximum age of a snapshot before reads report it expired.
	// Must be greater than 0. Default: one week
	Expiration time.Duration

	// Path is the root directory of the filesystem store. It is created recursively.
	Path string

	// Capacity bounds the number of (catalog, locale) snapshots the memory store holds.
	Capacity int

	// NumShards sets the number of shards of the memory store.
	NumShards int

	// EvictionPercentage is the share of snapshots dropped when the memory store is full.
	// Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the memory store sweeps expired snapshots.
	// Zero value uses the sturdyc default.
	EvictionInterval time.Duration

	// KeyPrefix namespaces redis keys.
	KeyPrefix string
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Driver:             DriverMemory,
		Expiration:         DefaultExpiration,
		Path:               DefaultPath,
		Capacity:           1024,
		NumShards:          16,
		EvictionPercentage: 10,
		KeyPrefix:          "apimo:catalog:",
	}
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverMemory, DriverFilesystem, DriverRedis, DriverSQL, DriverNone:
	default:
		return &ConfigError{Field: "Driver", Message: "must be one of memory, filesystem, redis, sql, none"}
	}

	if c.Expiration <= 0 {
		return &ConfigError{Field: "Expiration", Message: "must be greater than 0"}
	}

	if c.Driver == DriverFilesystem && c.Path == "" {
		return &ConfigError{Field: "Path", Message: "must not be empty"}
	}

	if c.Driver == DriverMemory {
		if c.Capacity <= 0 {
			return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
		}
		if c.NumShards <= 0 {
			return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
		}
		if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
			return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
		}
		if c.EvictionInterval < 0 {
			return &ConfigError{Field: "EvictionInterval", Message: "must be non-negative"}
		}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// Option customises a store at construction.
type Option func(*options)

type options struct {
	now    func() time.Time
	logger *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces the time source used to stamp and age snapshots.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
