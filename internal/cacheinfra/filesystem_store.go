package cacheinfra

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-errors"
)

// TextCodeCacheCorrupt tags errors raised for unreadable persisted snapshots.
const TextCodeCacheCorrupt = "CACHE_CORRUPT"

// FilesystemStore persists one JSON file per (catalog, locale) under a root directory:
//
//	{"timestamp": <epoch ms>, "cache": {"<id>": {"name": "...", "namePlural": "..."}}}
type FilesystemStore struct {
	root string
	cfg  Config
	opts options
}

var _ catalog.Store = (*FilesystemStore)(nil)

// fileSnapshot keeps presence information for the two top level keys.
type fileSnapshot struct {
	Timestamp *int64                     `json:"timestamp"`
	Cache     *map[int]catalog.EntryName `json:"cache"`
}

// NewFilesystemStore creates the root directory recursively and returns the store.
func NewFilesystemStore(cfg Config, opts ...Option) (*FilesystemStore, error) {
	cfg.Driver = DriverFilesystem
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "create catalog cache directory").
			WithMetadata(map[string]any{"path": cfg.Path})
	}

	return &FilesystemStore{
		root: cfg.Path,
		cfg:  cfg,
		opts: newOptions(opts),
	}, nil
}

// SetEntries writes the snapshot to a temporary file and renames it over the
// previous one, so readers only ever see a complete snapshot.
func (s *FilesystemStore) SetEntries(ctx context.Context, name catalog.Name, locale catalog.Locale, entries []catalog.Entry) error {
	data, err := json.Marshal(newSnapshot(s.opts.now(), entries))
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "encode catalog snapshot")
	}

	target := s.FilePath(name, locale)
	tmp, err := os.CreateTemp(s.root, filepath.Base(target)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "create catalog cache file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CategoryInternal, "write catalog cache file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CategoryInternal, "close catalog cache file")
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.CategoryInternal, "replace catalog cache file")
	}
	return nil
}

// GetEntry reads the snapshot file for (name, locale).
//
// A missing file reports catalog.ErrCacheExpired. Malformed JSON, or a document without
// a "cache" object, is a corruption error and is never reported as expired. A document
// without "timestamp" is served as fresh.
func (s *FilesystemStore) GetEntry(ctx context.Context, name catalog.Name, locale catalog.Locale, id int) (*catalog.EntryName, error) {
	path := s.FilePath(name, locale)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, catalog.ErrCacheExpired
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "read catalog cache file").
			WithMetadata(map[string]any{"path": path})
	}

	var parsed fileSnapshot
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, s.corrupt(ctx, path, err, "catalog cache file is not valid JSON")
	}
	if parsed.Cache == nil {
		return nil, s.corrupt(ctx, path, nil, "catalog cache file has no cache object")
	}

	// TODO: decide whether a snapshot without timestamp should expire instead of being served forever
	if parsed.Timestamp == nil {
		s.opts.logger.Warn("catalog cache file has no timestamp, serving it as fresh",
			slog.String("path", path))
	} else if expiredAt(*parsed.Timestamp, s.opts.now(), s.cfg.Expiration) {
		return nil, catalog.ErrCacheExpired
	}

	entry, ok := (*parsed.Cache)[id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// FilePath returns the file holding the snapshot for (name, locale).
func (s *FilesystemStore) FilePath(name catalog.Name, locale catalog.Locale) string {
	return filepath.Join(s.root, name.String()+"-"+locale.String()+".json")
}

func (s *FilesystemStore) corrupt(ctx context.Context, path string, source error, message string) error {
	var err *errors.Error
	if source != nil {
		err = errors.Wrap(source, errors.CategoryInternal, message)
	} else {
		err = errors.New(message, errors.CategoryInternal)
	}
	err = err.WithTextCode(TextCodeCacheCorrupt).WithMetadata(map[string]any{"path": path})
	s.opts.logger.LogAttrs(ctx, slog.LevelError, "corrupt catalog cache file", errors.ToSlogAttributes(err)...)
	return err
}
