// Package catalog resolves the numeric codes of the listing API into localized names.
//
// # Overview
//
// Most enumerated values in API payloads (property type, heating device, tags...)
// are integer ids into reference tables called catalogs. A catalog is fetched
// whole, per locale, and kept as a snapshot in a Store:
//
//   - Store: snapshot storage keyed by (catalog name, locale)
//   - Fetcher: retrieves the complete entry list of a catalog
//   - Resolver: reads from the Store and repopulates it from the Fetcher
//
// # Expiration
//
// A Store reports ErrCacheExpired when it holds no snapshot for a key or when the
// snapshot is older than its expiration window. A fresh snapshot that lacks an id
// answers (nil, nil): the id is unknown, not stale.
//
//	entry, err := store.GetEntry(ctx, catalog.PropertyType, catalog.LocaleEN, 2)
//	switch {
//	case errors.Is(err, catalog.ErrCacheExpired):
//		// fetch and SetEntries
//	case err != nil:
//		return err
//	case entry == nil:
//		// unknown id
//	}
//
// The Resolver handles this loop. Concurrent repopulations of the same key share
// one fetch.
//
//	resolver := catalog.NewResolver(store, fetcher, catalog.WithMetrics(metrics))
//	name, err := resolver.Resolve(ctx, catalog.PropertyType, catalog.LocaleFR, 2)
//
// # Stores
//
// Implementations live in the store package: in memory, filesystem, redis, SQL and
// a no-op store that never retains anything. With the no-op store every resolution
// fetches the catalog.
package catalog
