package apimo

import (
	"context"
	"fmt"

	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/schema"
	"github.com/goliatone/go-errors"
)

const (
	TextCodeNoAgency         = "NO_AGENCY"
	TextCodeMultipleAgencies = "MULTIPLE_AGENCIES"
)

// ListOptions pages through a listing. Zero values are not sent.
type ListOptions struct {
	Limit  int
	Offset int
}

func (o ListOptions) query() map[string]string {
	return map[string]string{
		"limit":  itoa(o.Limit),
		"offset": itoa(o.Offset),
	}
}

// GetAgencies lists the agencies the provider can access, resolving catalog codes
// for locale.
func (c *Client) GetAgencies(ctx context.Context, locale catalog.Locale, opts ListOptions) (*AgenciesPage, error) {
	body, err := c.get(ctx, []string{"agencies"}, opts.query())
	if err != nil {
		return nil, err
	}

	page, err := schema.DecodeJSON[AgenciesPage](ctx, agenciesPageRecord, body, c.Lookup(c.locale(locale)), c.decodeOptions("")...)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// DefaultAgencyID returns the id of the only agency the provider can access.
//
// No agency is a not found error. Several agencies is a configuration error: the
// caller has to choose one explicitly.
func (c *Client) DefaultAgencyID(ctx context.Context) (int, error) {
	page, err := c.GetAgencies(ctx, c.cfg.Culture, ListOptions{})
	if err != nil {
		return 0, err
	}

	switch len(page.Agencies) {
	case 0:
		return 0, errors.New("no agency available for this provider", errors.CategoryNotFound).
			WithTextCode(TextCodeNoAgency)
	case 1:
		return page.Agencies[0].ID, nil
	default:
		return 0, errors.New(
			fmt.Sprintf("several agencies available, select one explicitly (%s)", describeAgencies(page.Agencies)),
			errors.CategoryConflict,
		).WithTextCode(TextCodeMultipleAgencies).
			WithMetadata(map[string]any{"agencies": len(page.Agencies)})
	}
}
