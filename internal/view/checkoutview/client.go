// Package checkoutview renders the checkout page region: the step pipeline
// computed by the sequencer, the basket being checked out, and the
// back/next navigation controls.
package checkoutview

import (
	"context"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/commerce"
	"github.com/storewave/storefront/internal/link"
	"github.com/storewave/storefront/internal/logging"
	"github.com/storewave/storefront/internal/view"
)

// BasketService is the frontend controller the client gathers the basket
// from. Retrieval and mutation of baskets live behind this boundary.
type BasketService interface {
	Basket(ctx context.Context) (commerce.Basket, error)
}

// Navigation describes where the back and next controls point.
type Navigation struct {
	// Back is the URL of the back control. When BackExternal is true it
	// leaves the checkout (the basket page); otherwise it targets the
	// preceding step.
	Back         string `json:"back"`
	BackExternal bool   `json:"back_external"`

	// Next is the URL of the next control, or "" when the active step is
	// the last one (the rendering layer then shows the order submit
	// control instead).
	Next string `json:"next,omitempty"`
}

// Client gathers the checkout page data.
type Client struct {
	flowName string
	flow     checkout.Flow
	req      checkout.Request
	baskets  BasketService
	links    link.Builder
	log      *logging.Logger
}

// New creates a checkout view client for one render. The flow comes from
// configuration; the request carries the step parameters of the incoming
// request.
func New(flowName string, flow checkout.Flow, req checkout.Request, baskets BasketService, links link.Builder, log *logging.Logger) *Client {
	return &Client{
		flowName: flowName,
		flow:     flow,
		req:      req,
		baskets:  baskets,
		links:    links,
		log:      log.WithClient("checkout").WithFlow(flowName),
	}
}

// Name implements view.Client.
func (c *Client) Name() string { return "checkout" }

// Gather implements view.Client. It resolves the step sequencing for this
// render, fetches the basket, and builds the navigation targets.
func (c *Client) Gather(ctx context.Context) (view.Data, error) {
	res, err := checkout.Resolve(c.flow, c.req)
	if err != nil {
		return nil, err
	}
	if res.Recovered {
		// The flow and one-page configuration disagree; the render still
		// works from the first step, but an operator should reconcile them.
		c.log.Warn("active step not navigable, recovered to first step",
			"requested", c.req.Requested.String(),
			"carried", c.req.Active.String(),
			"active", res.Active.String())
	}

	basket, err := c.baskets.Basket(ctx)
	if err != nil {
		return nil, err
	}

	return view.Data{
		"flow":        c.flowName,
		"steps":       res.Steps,
		"activeStep":  res.Active,
		"stepsBefore": res.Before,
		"stepsAfter":  res.After,
		"navigation":  c.navigation(res),
		"basket":      basket,
		"total":       basket.GrandTotal().Format(basket.Currency),
	}, nil
}

// navigation turns the resolved back/next steps into link targets.
func (c *Client) navigation(res checkout.Resolution) Navigation {
	params := map[string]string{"flow": c.flowName}

	var nav Navigation
	if res.Back.IsSet() {
		nav.Back = c.links.StepURL(res.Back, params)
	} else {
		nav.Back = c.links.BasketURL()
		nav.BackExternal = true
	}
	if res.Next.IsSet() {
		nav.Next = c.links.StepURL(res.Next, params)
	}
	return nav
}
