package cacheinfra

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

type sqlSnapshotRow struct {
	bun.BaseModel `bun:"table:apimo_catalog_snapshots"`

	Catalog   string `bun:"catalog,pk"`
	Locale    string `bun:"locale,pk"`
	FetchedAt int64  `bun:"fetched_at,notnull"`
}

type sqlEntryRow struct {
	bun.BaseModel `bun:"table:apimo_catalog_entries"`

	Catalog    string `bun:"catalog,pk"`
	Locale     string `bun:"locale,pk"`
	EntryID    int    `bun:"entry_id,pk"`
	Name       string `bun:"name,notnull"`
	NamePlural string `bun:"name_plural,nullzero"`
}

// SQLStore keeps snapshots in two tables: one row per (catalog, locale) with the fetch
// time and one row per entry. SetEntries swaps a snapshot inside one transaction.
type SQLStore struct {
	db   bun.IDB
	cfg  Config
	opts options
}

var _ catalog.Store = (*SQLStore)(nil)

// NewSQLStore creates the backing tables if needed.
func NewSQLStore(ctx context.Context, db *bun.DB, cfg Config, opts ...Option) (*SQLStore, error) {
	cfg.Driver = DriverSQL
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if db == nil {
		return nil, &ConfigError{Field: "DB", Message: "database handle is required"}
	}

	for _, model := range []any{(*sqlSnapshotRow)(nil), (*sqlEntryRow)(nil)} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "create catalog cache tables")
		}
	}

	return &SQLStore{db: db, cfg: cfg, opts: newOptions(opts)}, nil
}

func (s *SQLStore) SetEntries(ctx context.Context, name catalog.Name, locale catalog.Locale, entries []catalog.Entry) error {
	rows := make([]sqlEntryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, sqlEntryRow{
			Catalog:    name.String(),
			Locale:     locale.String(),
			EntryID:    e.ID,
			Name:       e.Name,
			NamePlural: e.NamePlural,
		})
	}
	snap := sqlSnapshotRow{
		Catalog:   name.String(),
		Locale:    locale.String(),
		FetchedAt: s.opts.now().UnixMilli(),
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*sqlEntryRow)(nil)).
			Where("catalog = ?", snap.Catalog).
			Where("locale = ?", snap.Locale).
			Exec(ctx); err != nil {
			return err
		}
		if len(rows) > 0 {
			if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
				return err
			}
		}
		_, err := tx.NewInsert().
			Model(&snap).
			On("CONFLICT (catalog, locale) DO UPDATE").
			Set("fetched_at = EXCLUDED.fetched_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "store catalog snapshot").
			WithMetadata(map[string]any{"catalog": snap.Catalog, "locale": snap.Locale})
	}
	return nil
}

func (s *SQLStore) GetEntry(ctx context.Context, name catalog.Name, locale catalog.Locale, id int) (*catalog.EntryName, error) {
	var snap sqlSnapshotRow
	err := s.db.NewSelect().
		Model(&snap).
		Where("catalog = ?", name.String()).
		Where("locale = ?", locale.String()).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalog.ErrCacheExpired
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "read catalog snapshot")
	}
	if expiredAt(snap.FetchedAt, s.opts.now(), s.cfg.Expiration) {
		return nil, catalog.ErrCacheExpired
	}

	var row sqlEntryRow
	err = s.db.NewSelect().
		Model(&row).
		Where("catalog = ?", name.String()).
		Where("locale = ?", locale.String()).
		Where("entry_id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "read catalog entry")
	}
	return &catalog.EntryName{Name: row.Name, NamePlural: row.NamePlural}, nil
}
