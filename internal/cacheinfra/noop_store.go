package cacheinfra

import (
	"context"

	"github.com/goliatone/go-apimo/catalog"
)

// NoopStore never retains anything: every read reports catalog.ErrCacheExpired,
// which forces each lookup through the live fetch path.
type NoopStore struct{}

var _ catalog.Store = NoopStore{}

func NewNoopStore() NoopStore { return NoopStore{} }

func (NoopStore) SetEntries(context.Context, catalog.Name, catalog.Locale, []catalog.Entry) error {
	return nil
}

func (NoopStore) GetEntry(context.Context, catalog.Name, catalog.Locale, int) (*catalog.EntryName, error) {
	return nil, catalog.ErrCacheExpired
}
