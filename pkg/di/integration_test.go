package di

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-apimo/apimo"
	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/pkg/config"
	"github.com/goliatone/go-apimo/pkg/testsupport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var apimoTestdata = filepath.Join("..", "..", "apimo", "testdata")

func newFakeAPI(t *testing.T) *testsupport.FakeAPI {
	t.Helper()

	api := testsupport.NewFakeAPI(t)
	generic := testsupport.MustJSON(t, []catalog.Entry{
		{ID: 1, Name: "one"},
		{ID: 2, Name: "two"},
		{ID: 3, Name: "three"},
	})
	for _, name := range apimo.PropertyRecord.CatalogFields() {
		api.Handle("/catalogs/"+name.String(), http.StatusOK, generic)
	}
	api.HandleFixture(t, "/catalogs/property_type", filepath.Join(apimoTestdata, "property_type_en.json"))
	api.HandleFixture(t, "/agencies", filepath.Join(apimoTestdata, "agencies.json"))
	api.HandleFixture(t, "/agencies/1234/properties", filepath.Join(apimoTestdata, "properties.json"))
	return api
}

func TestEndToEnd_FilesystemCacheSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(t)

	settings := testSettings()
	settings.BaseURL = api.URL
	settings.Cache = config.CacheSettings{
		Driver:     "filesystem",
		Path:       t.TempDir(),
		Expiration: time.Hour,
	}

	first := newTestContainer(t, settings)
	agencyID, err := first.Client().DefaultAgencyID(ctx)
	if err != nil {
		t.Fatalf("DefaultAgencyID failed: %v", err)
	}

	page, err := first.Client().GetProperties(ctx, agencyID, "", apimo.PropertyQuery{})
	if err != nil {
		t.Fatalf("GetProperties failed: %v", err)
	}
	if got := page.Properties[0].Type; got == nil || got.Name != "House" {
		t.Fatalf("expected House, got %+v", got)
	}
	if api.Hits("/catalogs/property_type") != 1 {
		t.Fatalf("expected one property_type fetch, got %d", api.Hits("/catalogs/property_type"))
	}

	second := newTestContainer(t, settings)
	page, err = second.Client().GetProperties(ctx, agencyID, "", apimo.PropertyQuery{})
	if err != nil {
		t.Fatalf("GetProperties on the second container failed: %v", err)
	}
	if got := page.Properties[0].Type; got == nil || got.Name != "House" {
		t.Errorf("expected House from the persisted snapshot, got %+v", got)
	}
	if api.Hits("/catalogs/property_type") != 1 {
		t.Errorf("expected the persisted snapshot to be reused, got %d fetches", api.Hits("/catalogs/property_type"))
	}
}

func TestEndToEnd_SQLCacheWithMetrics(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI(t)

	settings := testSettings()
	settings.BaseURL = api.URL
	settings.Cache = config.CacheSettings{Driver: "sql", SQLDSN: ":memory:", Expiration: time.Hour}

	c := newTestContainer(t, settings, WithRegisterer(prometheus.NewRegistry()))
	for range 2 {
		if _, err := c.Client().GetProperties(ctx, 1234, catalog.LocaleEN, apimo.PropertyQuery{}); err != nil {
			t.Fatalf("GetProperties failed: %v", err)
		}
	}

	if got := testutil.ToFloat64(c.Metrics().Fetches.WithLabelValues("property_type", "success")); got != 1 {
		t.Errorf("expected one property_type fetch, got %v", got)
	}
	if got := testutil.ToFloat64(c.Metrics().Lookups.WithLabelValues("property_type", "hit")); got != 1 {
		t.Errorf("expected the second listing to hit the cache, got %v", got)
	}

	got, err := c.Store().GetEntry(ctx, catalog.PropertyType, catalog.LocaleEN, 1)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got == nil || got.NamePlural != "Apartments" {
		t.Errorf("expected the stored snapshot to carry plurals, got %+v", got)
	}
}

func TestEndToEnd_TransformDisabled(t *testing.T) {
	api := newFakeAPI(t)

	settings := testSettings()
	settings.BaseURL = api.URL
	settings.Transform = false

	c := newTestContainer(t, settings)
	page, err := c.Client().GetProperties(context.Background(), 1234, "", apimo.PropertyQuery{})
	if err != nil {
		t.Fatalf("GetProperties failed: %v", err)
	}
	if got := page.Properties[0].Type; got == nil || got.Name != "2" {
		t.Errorf("expected the raw id, got %+v", got)
	}
	if api.Hits("/catalogs/property_type") != 0 {
		t.Errorf("expected no catalog fetch, got %d", api.Hits("/catalogs/property_type"))
	}
}
