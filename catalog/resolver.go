package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/goliatone/go-errors"
	"golang.org/x/sync/singleflight"
)

// Resolver turns catalog codes into names, reading from a Store and repopulating it
// from a Fetcher whenever the Store reports the snapshot as expired.
type Resolver struct {
	store   Store
	fetcher Fetcher
	group   singleflight.Group
	metrics *Metrics
	logger  *slog.Logger
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithMetrics records lookups and fetches on m.
func WithMetrics(m *Metrics) ResolverOption {
	return func(r *Resolver) { r.metrics = m }
}

// WithLogger sets the logger used for repopulation events.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver backed by store and fetcher.
func NewResolver(store Store, fetcher Fetcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:   store,
		fetcher: fetcher,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the name of entry id in catalog name for locale, or nil when the
// catalog has no such entry.
//
// A cache hit is returned as is. On ErrCacheExpired the catalog is fetched, stored and
// the lookup retried once. Stores that do not retain snapshots answer the retry with
// ErrCacheExpired again; the fetched snapshot is then used directly. Any other error
// is returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, name Name, locale Locale, id int) (*EntryName, error) {
	entry, err := r.store.GetEntry(ctx, name, locale, id)
	if err == nil {
		r.metrics.lookup(name, entry)
		return entry, nil
	}
	if !errors.Is(err, ErrCacheExpired) {
		return nil, err
	}
	r.metrics.expired(name)

	entries, err := r.Populate(ctx, name, locale)
	if err != nil {
		return nil, err
	}

	entry, err = r.store.GetEntry(ctx, name, locale, id)
	switch {
	case err == nil:
		return entry, nil
	case errors.Is(err, ErrCacheExpired):
		return findEntry(entries, id), nil
	default:
		return nil, err
	}
}

// Transform exposes Resolve as a TransformFunc.
func (r *Resolver) Transform() TransformFunc {
	return r.Resolve
}

// Populate fetches the full catalog and replaces the stored snapshot. Concurrent calls
// for the same key share a single fetch.
func (r *Resolver) Populate(ctx context.Context, name Name, locale Locale) ([]Entry, error) {
	key := name.String() + "." + locale.String()

	// the shared fetch outlives any single caller so every waiter gets the snapshot
	shared := context.WithoutCancel(ctx)
	v, err, _ := r.group.Do(key, func() (any, error) {
		start := time.Now()
		entries, err := r.fetcher.FetchCatalogEntries(shared, name, locale)
		r.metrics.fetched(name, start, err)
		if err != nil {
			return nil, err
		}
		if err := r.store.SetEntries(shared, name, locale, entries); err != nil {
			return nil, err
		}
		r.logger.Debug("catalog repopulated",
			slog.String("catalog", name.String()),
			slog.String("locale", locale.String()),
			slog.Int("entries", len(entries)),
			slog.Duration("elapsed", time.Since(start)),
		)
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Entry), nil
}

func findEntry(entries []Entry, id int) *EntryName {
	for _, e := range entries {
		if e.ID == id {
			name := e.EntryName()
			return &name
		}
	}
	return nil
}
