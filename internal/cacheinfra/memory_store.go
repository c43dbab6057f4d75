package cacheinfra

import (
	"context"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/viccon/sturdyc"
)

// MemoryStore keeps catalog snapshots in a process-local sturdyc cache.
// Snapshots are lost when the process exits.
type MemoryStore struct {
	client *sturdyc.Client[snapshot]
	cfg    Config
	opts   options
}

var _ catalog.Store = (*MemoryStore)(nil)

// NewMemoryStore creates a memory store. The sturdyc TTL equals the snapshot
// expiration so entries are also reclaimed by the sturdyc eviction loop.
func NewMemoryStore(cfg Config, opts ...Option) (*MemoryStore, error) {
	cfg.Driver = DriverMemory
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var sturdycOpts []sturdyc.Option
	if cfg.EvictionInterval > 0 {
		sturdycOpts = append(sturdycOpts, sturdyc.WithEvictionInterval(cfg.EvictionInterval))
	}

	client := sturdyc.New[snapshot](
		cfg.Capacity,
		cfg.NumShards,
		cfg.Expiration,
		cfg.EvictionPercentage,
		sturdycOpts...,
	)

	return &MemoryStore{
		client: client,
		cfg:    cfg,
		opts:   newOptions(opts),
	}, nil
}

// SetEntries replaces the snapshot for (name, locale).
func (s *MemoryStore) SetEntries(ctx context.Context, name catalog.Name, locale catalog.Locale, entries []catalog.Entry) error {
	s.client.Set(storeKey("", name, locale), newSnapshot(s.opts.now(), entries))
	return nil
}

// GetEntry looks id up in the snapshot for (name, locale).
func (s *MemoryStore) GetEntry(ctx context.Context, name catalog.Name, locale catalog.Locale, id int) (*catalog.EntryName, error) {
	snap, ok := s.client.Get(storeKey("", name, locale))
	if !ok {
		return nil, catalog.ErrCacheExpired
	}
	if snap.expired(s.opts.now(), s.cfg.Expiration) {
		return nil, catalog.ErrCacheExpired
	}
	return snap.lookup(id), nil
}
