package catalog

import (
	"context"

	"github.com/goliatone/go-errors"
)

// CategoryCacheExpired marks errors that ask the caller to repopulate a catalog snapshot.
const CategoryCacheExpired errors.Category = "cache_expired"

// ErrCacheExpired is returned by a Store when no snapshot exists for a key or the
// snapshot is older than the store's expiration window.
var ErrCacheExpired = errors.New("catalog cache expired", CategoryCacheExpired)

// Store keeps complete catalog snapshots keyed by (catalog name, locale).
//
// SetEntries replaces the whole snapshot for the key; it never merges. GetEntry returns
// ErrCacheExpired when the snapshot is absent or stale, and (nil, nil) when a fresh
// snapshot does not contain id.
type Store interface {
	SetEntries(ctx context.Context, name Name, locale Locale, entries []Entry) error
	GetEntry(ctx context.Context, name Name, locale Locale, id int) (*EntryName, error)
}

// Fetcher retrieves the full, validated list of entries of a catalog for a locale.
type Fetcher interface {
	FetchCatalogEntries(ctx context.Context, name Name, locale Locale) ([]Entry, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, name Name, locale Locale) ([]Entry, error)

func (f FetcherFunc) FetchCatalogEntries(ctx context.Context, name Name, locale Locale) ([]Entry, error) {
	return f(ctx, name, locale)
}

// TransformFunc resolves a catalog code for an explicit locale. Callers may supply
// their own to replace the cache-backed Resolver.
type TransformFunc func(ctx context.Context, name Name, locale Locale, id int) (*EntryName, error)

// LookupFunc resolves a catalog code for a locale fixed by the caller.
type LookupFunc func(ctx context.Context, name Name, id int) (*EntryName, error)

// Localize binds fn to locale.
func (fn TransformFunc) Localize(locale Locale) LookupFunc {
	return func(ctx context.Context, name Name, id int) (*EntryName, error) {
		return fn(ctx, name, locale, id)
	}
}
