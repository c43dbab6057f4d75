package apimo

import (
	"context"
	"log/slog"
	"time"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-errors"
	"golang.org/x/sync/errgroup"
)

// GetCatalogs lists the catalogs exposed by the API.
func (c *Client) GetCatalogs(ctx context.Context) ([]catalog.Definition, error) {
	body, err := c.get(ctx, []string{"catalogs"}, nil)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeDefinitions(body)
}

// GetCatalog fetches every entry of catalog name for locale.
func (c *Client) GetCatalog(ctx context.Context, name catalog.Name, locale catalog.Locale) ([]catalog.Entry, error) {
	body, err := c.get(ctx, []string{"catalogs", name.String()}, map[string]string{
		"culture": c.locale(locale).String(),
	})
	if err != nil {
		return nil, err
	}

	entries, err := catalog.DecodeEntries(body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "catalog "+name.String())
	}
	return entries, nil
}

// FetchCatalogEntries makes the Client the catalog.Fetcher of its own resolver.
func (c *Client) FetchCatalogEntries(ctx context.Context, name catalog.Name, locale catalog.Locale) ([]catalog.Entry, error) {
	return c.GetCatalog(ctx, name, locale)
}

// PopulateCache fetches catalog name for locale and replaces its cached snapshot.
func (c *Client) PopulateCache(ctx context.Context, name catalog.Name, locale catalog.Locale) ([]catalog.Entry, error) {
	return c.resolver.Populate(ctx, name, c.locale(locale))
}

// WarmCatalogs populates the cache for every public catalog in every locale, running
// at most RateLimit.Requests fetches at a time. Without locales the default culture
// is used. The first failure cancels the remaining fetches: queued catalogs are
// skipped, while fetches already in flight run to completion.
func (c *Client) WarmCatalogs(ctx context.Context, locales ...catalog.Locale) error {
	if len(locales) == 0 {
		locales = []catalog.Locale{c.cfg.Culture}
	}

	defs, err := c.GetCatalogs(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.RateLimit.Requests)

	for _, def := range defs {
		if def.Private {
			c.logger.DebugContext(ctx, "skipping private catalog", slog.String("catalog", def.Name))
			continue
		}
		name := catalog.Name(def.Name)
		for _, locale := range locales {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				_, err := c.PopulateCache(gctx, name, locale)
				return err
			})
		}
	}
	return g.Wait()
}

// RefreshCatalogs warms the catalogs now and then every interval until ctx is done,
// returning ctx.Err(). A failed round is logged and retried at the next tick.
func (c *Client) RefreshCatalogs(ctx context.Context, interval time.Duration, locales ...catalog.Locale) error {
	if interval <= 0 {
		return errors.New("catalog refresh interval must be positive", errors.CategoryBadInput).
			WithMetadata(map[string]any{"interval": interval.String()})
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := c.WarmCatalogs(ctx, locales...); err != nil && ctx.Err() == nil {
			c.logger.WarnContext(ctx, "catalog refresh failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
