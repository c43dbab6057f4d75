package apimo

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/schema"
)

// PropertyQuery filters a properties listing. Zero values are not sent.
type PropertyQuery struct {
	ListOptions
	// Timestamp only returns properties updated after this unix time.
	Timestamp int64
	Step      string
	Status    string
	Group     string
}

func (q PropertyQuery) query() map[string]string {
	out := q.ListOptions.query()
	if q.Timestamp != 0 {
		out["timestamp"] = strconv.FormatInt(q.Timestamp, 10)
	}
	out["step"] = q.Step
	out["status"] = q.Status
	out["group"] = q.Group
	return out
}

// GetProperties lists the properties of agencyID, resolving catalog codes for locale.
func (c *Client) GetProperties(ctx context.Context, agencyID int, locale catalog.Locale, q PropertyQuery) (*PropertiesPage, error) {
	body, err := c.get(ctx, propertiesPath(agencyID), q.query())
	if err != nil {
		return nil, err
	}

	page, err := schema.DecodeJSON[PropertiesPage](ctx, propertiesPageRecord, body, c.Lookup(c.locale(locale)), c.decodeOptions("")...)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SyncProperties returns the properties of agencyID changed since the previous call
// for the same agency. The first call returns every property.
//
// The cursor advances only on success, to one second before the server timestamp of
// the response so that changes landing in the same second are returned again.
func (c *Client) SyncProperties(ctx context.Context, agencyID int, locale catalog.Locale) (*PropertiesPage, error) {
	key := syncKey(agencyID)
	since, _ := c.syncs.Load(key)

	page, err := c.GetProperties(ctx, agencyID, locale, PropertyQuery{Timestamp: since})
	if err != nil {
		return nil, err
	}

	if page.Timestamp > 0 {
		c.syncs.Store(key, page.Timestamp-1)
	}
	c.logger.DebugContext(ctx, "properties synced",
		slog.Int("agency", agencyID),
		slog.Int64("since", since),
		slog.Int("properties", len(page.Properties)),
	)
	return page, nil
}

// LastSync reports the cursor SyncProperties will send next for agencyID.
func (c *Client) LastSync(agencyID int) (int64, bool) {
	return c.syncs.Load(syncKey(agencyID))
}

// ResetSync makes the next SyncProperties for agencyID return every property.
func (c *Client) ResetSync(agencyID int) {
	c.syncs.Delete(syncKey(agencyID))
}

func propertiesPath(agencyID int) []string {
	return []string{"agencies", strconv.Itoa(agencyID), "properties"}
}

func syncKey(agencyID int) string {
	return "agencies/" + strconv.Itoa(agencyID) + "/properties"
}
