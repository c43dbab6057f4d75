package apimo

import (
	"log/slog"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/internal/transport"
)

const DefaultBaseURL = "https://api.apimo.pro"

// Config tunes a Client. Zero valued fields take their DefaultConfig value.
type Config struct {
	// BaseURL is the API root, also used to resolve relative agency links.
	BaseURL string
	// Culture is the locale used when callers do not provide one.
	Culture catalog.Locale

	Catalogs CatalogsConfig

	RateLimit RateLimit

	// Location interprets API dates that carry no offset. Defaults to UTC.
	Location   *time.Location
	HTTPClient *http.Client
	Logger     *slog.Logger
	// Metrics, when set, records catalog lookups and fetches.
	Metrics *catalog.Metrics
}

type CatalogsConfig struct {
	Cache     CacheConfig
	Transform TransformConfig
}

// CacheConfig controls catalog snapshot caching. When Disabled, or with transform
// disabled, a no-op store is used and every resolution fetches the catalog.
type CacheConfig struct {
	Disabled bool
	// Store defaults to an in-memory store with a one week expiration.
	Store catalog.Store
}

// TransformConfig controls catalog code resolution. When Disabled ids are rendered
// as names. TransformFn replaces the cache-backed resolver.
type TransformConfig struct {
	Disabled    bool
	TransformFn catalog.TransformFunc
}

// RateLimit allows Requests per Interval across all calls of a Client.
type RateLimit struct {
	Requests int
	Interval time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Culture: catalog.LocaleEN,
		RateLimit: RateLimit{
			Requests: transport.DefaultRequests,
			Interval: transport.DefaultInterval,
		},
		Location: time.UTC,
	}
}

// withDefaults fills zero valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.Culture == "" {
		c.Culture = def.Culture
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = def.RateLimit.Requests
	}
	if c.RateLimit.Interval == 0 {
		c.RateLimit.Interval = def.RateLimit.Interval
	}
	if c.Location == nil {
		c.Location = def.Location
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Culture, validation.Required, validation.By(validLocale)),
		validation.Field(&c.RateLimit),
	)
}

func (r RateLimit) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Requests, validation.Min(1)),
		validation.Field(&r.Interval, validation.Min(time.Millisecond)),
	)
}

func validLocale(value any) error {
	if l, ok := value.(catalog.Locale); ok && !l.Valid() {
		return validation.NewError("validation_locale", "must be a supported culture")
	}
	return nil
}
