package di

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-apimo/apimo"
	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/pkg/config"
	"github.com/goliatone/go-apimo/store"
	"github.com/goliatone/go-errors"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Container wires process settings into a ready to use client.
// It owns the connections opened for the catalog store; call Close when done.
type Container struct {
	settings config.Settings
	logger   *slog.Logger
	metrics  *catalog.Metrics
	store    catalog.Store
	client   *apimo.Client
	closers  []func() error
}

// Option customises a Container.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	httpClient *http.Client
}

// WithLogger replaces the logger built from the LogLevel setting.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRegisterer enables catalog metrics, registered on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// NewContainer validates settings, opens the catalog store they select and builds
// the client on top of it.
func NewContainer(ctx context.Context, settings config.Settings, opts ...Option) (*Container, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{settings: settings, logger: o.logger}
	if c.logger == nil {
		c.logger = NewLogger(settings.LogLevel)
	}
	if o.registerer != nil {
		c.metrics = catalog.NewMetrics(o.registerer)
	}

	s, err := c.newStore(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.store = s

	cfg := apimo.DefaultConfig()
	cfg.BaseURL = settings.BaseURL
	cfg.Culture = settings.Culture
	cfg.Catalogs.Cache.Disabled = settings.Cache.Driver == string(store.DriverNone)
	cfg.Catalogs.Cache.Store = s
	cfg.Catalogs.Transform.Disabled = !settings.Transform
	cfg.RateLimit = apimo.RateLimit{
		Requests: settings.RateLimit.Requests,
		Interval: settings.RateLimit.Interval,
	}
	cfg.HTTPClient = o.httpClient
	cfg.Logger = c.logger
	cfg.Metrics = c.metrics

	client, err := apimo.New(settings.Provider, settings.Token, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.client = client

	c.logger.Debug("container ready",
		slog.String("cache_driver", settings.Cache.Driver),
		slog.String("culture", settings.Culture.String()),
		slog.Bool("transform", settings.Transform),
	)
	return c, nil
}

// NewContainerFromEnv loads settings with config.Load and builds a Container.
func NewContainerFromEnv(ctx context.Context, opts ...Option) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewContainer(ctx, *settings, opts...)
}

func (c *Container) Client() *apimo.Client { return c.client }

func (c *Container) Store() catalog.Store { return c.store }

// Metrics is nil unless WithRegisterer was given.
func (c *Container) Metrics() *catalog.Metrics { return c.metrics }

func (c *Container) Logger() *slog.Logger { return c.logger }

// Settings returns a copy of the settings the container was built from.
func (c *Container) Settings() config.Settings { return c.settings }

// Close releases the store connections in reverse order of creation and returns
// the first error.
func (c *Container) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

func (c *Container) newStore(ctx context.Context) (catalog.Store, error) {
	cache := c.settings.Cache

	cfg := store.DefaultConfig()
	cfg.Driver = store.Driver(cache.Driver)
	cfg.Path = cache.Path
	cfg.Logger = c.logger
	if cache.Expiration > 0 {
		cfg.Expiration = cache.Expiration
	}

	switch cfg.Driver {
	case store.DriverRedis:
		opts, err := redis.ParseURL(cache.RedisURL)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryBadInput, "invalid redis url")
		}
		client := redis.NewClient(opts)
		c.closers = append(c.closers, client.Close)
		cfg.Redis = client
	case store.DriverSQL:
		db, err := openDB(cache.SQLDSN)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, db.Close)
		cfg.DB = db
	}

	return store.New(ctx, cfg)
}

// openDB opens a postgres database for postgres:// DSNs and a SQLite one otherwise.
func openDB(dsn string) (*bun.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sqldb, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to open postgres database")
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	}

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to open sqlite database")
	}
	// sqlite allows a single writer; in-memory databases also live in one connection
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}
