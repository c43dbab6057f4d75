package cacheinfra

import (
	"context"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-errors"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// RedisStore keeps each snapshot as a single msgpack value, so a write replaces the
// whole snapshot atomically. The key TTL equals the expiration window; the embedded
// timestamp is still checked on read.
type RedisStore struct {
	client redis.UniversalClient
	cfg    Config
	opts   options
}

var _ catalog.Store = (*RedisStore)(nil)

// NewRedisStore creates a store on top of an existing redis client.
func NewRedisStore(client redis.UniversalClient, cfg Config, opts ...Option) (*RedisStore, error) {
	cfg.Driver = DriverRedis
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, &ConfigError{Field: "Redis", Message: "client is required"}
	}
	return &RedisStore{client: client, cfg: cfg, opts: newOptions(opts)}, nil
}

func (s *RedisStore) SetEntries(ctx context.Context, name catalog.Name, locale catalog.Locale, entries []catalog.Entry) error {
	data, err := msgpack.Marshal(newSnapshot(s.opts.now(), entries))
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "encode catalog snapshot")
	}
	if err := s.client.Set(ctx, s.key(name, locale), data, s.cfg.Expiration).Err(); err != nil {
		return errors.Wrap(err, errors.CategoryExternal, "store catalog snapshot in redis")
	}
	return nil
}

func (s *RedisStore) GetEntry(ctx context.Context, name catalog.Name, locale catalog.Locale, id int) (*catalog.EntryName, error) {
	key := s.key(name, locale)

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, catalog.ErrCacheExpired
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryExternal, "read catalog snapshot from redis")
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "catalog snapshot in redis is corrupt").
			WithTextCode(TextCodeCacheCorrupt).
			WithMetadata(map[string]any{"key": key})
	}
	if snap.expired(s.opts.now(), s.cfg.Expiration) {
		return nil, catalog.ErrCacheExpired
	}
	return snap.lookup(id), nil
}

func (s *RedisStore) key(name catalog.Name, locale catalog.Locale) string {
	return storeKey(s.cfg.KeyPrefix, name, locale)
}
