// Package transport performs authenticated, rate limited GET requests against the
// listing API.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	DefaultRequests = 10
	DefaultInterval = time.Second
	DefaultTimeout  = 30 * time.Second

	// RequestIDHeader carries the correlation id of every request.
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 4 << 10
)

// Config configures a Client.
type Config struct {
	Provider string
	Token    string

	// Requests per Interval. The full allowance is available as a burst.
	Requests int
	Interval time.Duration

	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Provider, validation.Required),
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.Requests, validation.Min(1)),
		validation.Field(&c.Interval, validation.Min(time.Millisecond)),
	)
}

// Client is safe for concurrent use. All requests share one limiter.
type Client struct {
	provider string
	token    string
	limiter  *rate.Limiter
	http     *http.Client
	logger   *slog.Logger
}

// New validates cfg, filling zero rate and client settings with defaults.
func New(cfg Config) (*Client, error) {
	if cfg.Requests == 0 {
		cfg.Requests = DefaultRequests
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.FromOzzoValidation(err, "invalid transport configuration")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	every := cfg.Interval / time.Duration(cfg.Requests)
	return &Client{
		provider: cfg.Provider,
		token:    cfg.Token,
		limiter:  rate.NewLimiter(rate.Every(every), cfg.Requests),
		http:     cfg.HTTPClient,
		logger:   cfg.Logger,
	}, nil
}

// Get waits for the limiter, issues the request with Basic credentials and returns
// the body of a 2xx response.
//
// Non-2xx responses become errors categorised from the status code, with Code set to
// the status. Network failures are CategoryExternal. Neither is retried.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	requestID := uuid.NewString()
	meta := map[string]any{"url": url, "request_id": requestID}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryExternal, "rate limiter wait").WithMetadata(meta)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "create request").WithMetadata(meta)
	}
	req.SetBasicAuth(c.provider, c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryExternal, "request failed").WithMetadata(meta)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "apimo request",
		slog.String("url", url),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		meta["body"] = string(body)
		err := errors.New(fmt.Sprintf("GET %s returned %d", req.URL.Path, resp.StatusCode), errors.HTTPStatusToCategory(resp.StatusCode)).
			WithCode(resp.StatusCode).
			WithTextCode(errors.HTTPStatusToTextCode(resp.StatusCode)).
			WithMetadata(meta)
		c.logger.LogAttrs(ctx, slog.LevelWarn, "apimo request rejected", errors.ToSlogAttributes(err)...)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryExternal, "read response").WithMetadata(meta)
	}
	return body, nil
}
