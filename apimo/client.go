package apimo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/internal/transport"
	"github.com/goliatone/go-apimo/schema"
	"github.com/goliatone/go-apimo/store"
	"github.com/goliatone/go-errors"
	"github.com/puzpuzpuz/xsync/v3"
)

// Getter performs an authenticated GET and returns the response body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client is a typed client for the listing API. It is safe for concurrent use.
type Client struct {
	cfg      Config
	base     *url.URL
	http     Getter
	store    catalog.Store
	resolver *catalog.Resolver
	syncs    *xsync.MapOf[string, int64]
	logger   *slog.Logger
}

// New creates a Client authenticating as provider with token.
func New(provider, token string, cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.FromOzzoValidation(err, "invalid client configuration")
	}

	http, err := transport.New(transport.Config{
		Provider:   provider,
		Token:      token,
		Requests:   cfg.RateLimit.Requests,
		Interval:   cfg.RateLimit.Interval,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	return newClient(cfg, http)
}

// NewWithGetter creates a Client on top of an existing Getter.
func NewWithGetter(getter Getter, cfg Config) (*Client, error) {
	if getter == nil {
		return nil, errors.New("getter is required", errors.CategoryBadInput)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.FromOzzoValidation(err, "invalid client configuration")
	}
	return newClient(cfg, getter)
}

func newClient(cfg Config, getter Getter) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "invalid base URL")
	}

	c := &Client{
		cfg:    cfg,
		base:   base,
		http:   getter,
		syncs:  xsync.NewMapOf[string, int64](),
		logger: cfg.Logger,
	}

	switch {
	case cfg.Catalogs.Cache.Disabled || cfg.Catalogs.Transform.Disabled:
		c.store = store.NewNoop()
	case cfg.Catalogs.Cache.Store != nil:
		c.store = cfg.Catalogs.Cache.Store
	default:
		s, err := store.NewMemory(store.DefaultExpiration)
		if err != nil {
			return nil, err
		}
		c.store = s
	}

	opts := []catalog.ResolverOption{catalog.WithLogger(cfg.Logger)}
	if cfg.Metrics != nil {
		opts = append(opts, catalog.WithMetrics(cfg.Metrics))
	}
	c.resolver = catalog.NewResolver(c.store, c, opts...)
	return c, nil
}

// Store returns the catalog store backing the resolver.
func (c *Client) Store() catalog.Store { return c.store }

// Resolver returns the cache-backed catalog resolver.
func (c *Client) Resolver() *catalog.Resolver { return c.resolver }

// Culture returns the default locale.
func (c *Client) Culture() catalog.Locale { return c.cfg.Culture }

// Lookup returns the catalog lookup used when decoding records for locale.
//
// With transform disabled ids are rendered as names. A configured TransformFn is
// used in place of the resolver.
func (c *Client) Lookup(locale catalog.Locale) catalog.LookupFunc {
	t := c.cfg.Catalogs.Transform
	switch {
	case t.Disabled:
		return func(ctx context.Context, name catalog.Name, id int) (*catalog.EntryName, error) {
			return &catalog.EntryName{Name: strconv.Itoa(id)}, nil
		}
	case t.TransformFn != nil:
		return t.TransformFn.Localize(locale)
	default:
		return c.resolver.Transform().Localize(locale)
	}
}

// get fetches the resource under the base URL.
func (c *Client) get(ctx context.Context, path []string, query map[string]string) ([]byte, error) {
	return c.http.Get(ctx, c.makeURL(path, query))
}

// makeURL joins path onto the base URL. Empty query values are left out.
func (c *Client) makeURL(path []string, query map[string]string) string {
	u := c.base.JoinPath(path...)

	values := url.Values{}
	for k, v := range query {
		if v != "" {
			values.Set(k, v)
		}
	}
	u.RawQuery = values.Encode()
	return u.String()
}

func (c *Client) decodeOptions(path string) []schema.Option {
	return []schema.Option{
		schema.WithBaseURL(c.cfg.BaseURL),
		schema.WithLocation(c.cfg.Location),
		schema.WithLogger(c.logger),
		schema.WithPath(path),
	}
}

func (c *Client) locale(locale catalog.Locale) catalog.Locale {
	if locale == "" {
		return c.cfg.Culture
	}
	return locale
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func describeAgencies(agencies []Agency) string {
	parts := make([]string, 0, len(agencies))
	for _, a := range agencies {
		parts = append(parts, fmt.Sprintf("%d: %s", a.ID, a.Name))
	}
	return strings.Join(parts, ", ")
}
