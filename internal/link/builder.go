// Package link builds navigable URLs for checkout steps and the
// surrounding shop pages. The sequencer decides which step a control
// points to; this package turns that step into a URL.
package link

import (
	"net/url"
	"sort"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/errors"
)

// Builder produces fully qualified URLs from step names and parameters.
// The concrete URL scheme belongs to the shop frontend, not the sequencer.
type Builder interface {
	// StepURL returns the URL for a checkout step, carrying the given
	// query parameters.
	StepURL(step checkout.Step, params map[string]string) string

	// BasketURL returns the pre-checkout destination used when the back
	// control leaves the checkout.
	BasketURL() string
}

// URLBuilder is the default Builder: it appends the checkout path and a
// step query parameter to a configured base URL.
type URLBuilder struct {
	base *url.URL
}

// NewURLBuilder creates a URLBuilder for the shop base URL,
// e.g. "https://shop.example.com".
func NewURLBuilder(base string) (*URLBuilder, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.NewConfigurationError("cannot parse base URL", errors.Join(errors.ErrBadBaseURL, err)).
			WithField("shop.base_url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.NewConfigurationError("base URL needs scheme and host", errors.ErrBadBaseURL).
			WithField("shop.base_url")
	}
	return &URLBuilder{base: u}, nil
}

// StepURL implements Builder. Parameters are encoded in sorted key order
// so the output is deterministic.
func (b *URLBuilder) StepURL(step checkout.Step, params map[string]string) string {
	u := *b.base
	u.Path = "/checkout"

	q := url.Values{}
	q.Set("step", step.String())

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, params[k])
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// BasketURL implements Builder.
func (b *URLBuilder) BasketURL() string {
	u := *b.base
	u.Path = "/basket"
	return u.String()
}
