// Package apimo is a typed client for the Apimo real estate API.
//
// Listings are decoded through declarative field tables: loosely typed payload
// values are coerced, dates are parsed, relative agency links become absolute URLs,
// and every catalog code is resolved to its localized name through a cache-backed
// catalog.Resolver.
//
//	cfg := apimo.DefaultConfig()
//	cfg.Culture = catalog.LocaleFR
//
//	client, err := apimo.New(provider, token, cfg)
//	if err != nil {
//		return err
//	}
//
//	agencyID, err := client.DefaultAgencyID(ctx)
//	if err != nil {
//		return err
//	}
//
//	page, err := client.SyncProperties(ctx, agencyID, "")
//
// Catalog snapshots live in the configured catalog.Store, in memory by default. See
// the store package for filesystem, redis and SQL backed stores.
package apimo
