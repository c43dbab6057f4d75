package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/internal/cacheinfra"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Driver != DriverMemory {
		t.Errorf("expected memory driver, got %s", cfg.Driver)
	}
	if cfg.Expiration != DefaultExpiration {
		t.Errorf("expected expiration %v, got %v", DefaultExpiration, cfg.Expiration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to be valid, got %v", err)
	}
}

func TestNew_SelectsDriver(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(t *testing.T, s catalog.Store)
	}{
		{
			name: "memory by default",
			mutate: func(c *Config) {
				c.Driver = ""
			},
			check: func(t *testing.T, s catalog.Store) {
				if _, ok := s.(*cacheinfra.MemoryStore); !ok {
					t.Errorf("expected *cacheinfra.MemoryStore, got %T", s)
				}
			},
		},
		{
			name: "filesystem",
			mutate: func(c *Config) {
				c.Driver = DriverFilesystem
				c.Path = t.TempDir()
			},
			check: func(t *testing.T, s catalog.Store) {
				if _, ok := s.(*cacheinfra.FilesystemStore); !ok {
					t.Errorf("expected *cacheinfra.FilesystemStore, got %T", s)
				}
			},
		},
		{
			name: "none",
			mutate: func(c *Config) {
				c.Driver = DriverNone
			},
			check: func(t *testing.T, s catalog.Store) {
				_, err := s.GetEntry(ctx, catalog.Tags, catalog.LocaleEN, 1)
				if !errors.Is(err, catalog.ErrCacheExpired) {
					t.Errorf("expected ErrCacheExpired from the no-op store, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			s, err := New(ctx, cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			tt.check(t, s)
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	ctx := context.Background()

	cfg := DefaultConfig()
	cfg.Expiration = 0
	s, err := New(ctx, cfg)
	if err == nil {
		t.Fatal("expected an error for zero expiration")
	}
	if s != nil {
		t.Errorf("expected a nil store, got %T", s)
	}

	cfg = DefaultConfig()
	cfg.Driver = DriverRedis
	s, err = New(ctx, cfg)
	if err == nil {
		t.Fatal("expected an error for a redis store without client")
	}
	if s != nil {
		t.Errorf("expected a nil store, got %T", s)
	}
}

func TestNewMemory_Roundtrip(t *testing.T) {
	ctx := context.Background()

	s, err := NewMemory(time.Hour)
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}

	if err := s.SetEntries(ctx, catalog.UserGroup, catalog.LocaleDE, []catalog.Entry{{ID: 4, Name: "Verwaltung"}}); err != nil {
		t.Fatalf("SetEntries failed: %v", err)
	}
	got, err := s.GetEntry(ctx, catalog.UserGroup, catalog.LocaleDE, 4)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got == nil || got.Name != "Verwaltung" {
		t.Errorf("expected Verwaltung, got %+v", got)
	}
}
