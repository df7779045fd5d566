// Package view assembles page view data from independent view clients.
//
// A Client gathers the data one region of a storefront page needs (the
// basket summary, the checkout navigation, the product listing, the
// account box). A [Page] runs all of its clients concurrently and collects
// their data under the client names; the rendering layer consumes that map
// to fill its templates. Rendering itself is outside this package.
package view

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/storewave/storefront/internal/errors"
	"github.com/storewave/storefront/internal/logging"
)

// tracerName identifies render spans in trace backends.
const tracerName = "storefront/view"

// Data is the view data one client contributes, keyed by template field.
type Data map[string]any

// Client gathers the view data for one region of a page.
type Client interface {
	// Name identifies the client; it becomes the key the client's data is
	// published under and must be unique within a page.
	Name() string

	// Gather collects the client's view data. It must respect ctx
	// cancellation when calling out to services.
	Gather(ctx context.Context) (Data, error)
}

// Result is one assembled page.
type Result struct {
	// RenderID correlates log lines and trace spans of this render.
	RenderID string

	// Views holds each client's data under the client's name.
	Views map[string]Data
}

// Page runs a fixed set of view clients to assemble a page.
type Page struct {
	name    string
	clients []Client
	log     *logging.Logger
	tracer  trace.Tracer
}

// NewPage creates a Page from the given clients. At least one client is
// required, and client names must be unique.
func NewPage(name string, log *logging.Logger, clients ...Client) (*Page, error) {
	if len(clients) == 0 {
		return nil, errors.ErrNoClients
	}

	seen := make(map[string]struct{}, len(clients))
	for _, c := range clients {
		if _, dup := seen[c.Name()]; dup {
			return nil, errors.NewConfigurationError("duplicate view client "+c.Name(), nil)
		}
		seen[c.Name()] = struct{}{}
	}

	return &Page{
		name:    name,
		clients: clients,
		log:     log,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// Assemble runs every client concurrently and collects their data. The
// first client failure cancels the remaining gathers and fails the page;
// a partially gathered page is never returned.
func (p *Page) Assemble(ctx context.Context) (*Result, error) {
	renderID := uuid.NewString()
	log := p.log.WithRender(renderID)

	ctx, span := p.tracer.Start(ctx, "page.assemble", trace.WithAttributes(
		attribute.String("page", p.name),
		attribute.String("render_id", renderID),
		attribute.Int("clients", len(p.clients)),
	))
	defer span.End()

	views := make([]Data, len(p.clients))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range p.clients {
		g.Go(func() error {
			ctx, span := p.tracer.Start(ctx, "client.gather", trace.WithAttributes(
				attribute.String("client", c.Name()),
			))
			defer span.End()

			data, err := c.Gather(ctx)
			if err != nil {
				log.WithClient(c.Name()).Error("gather failed", "error", err)
				return errors.NewViewError(c.Name(), "gather failed", err)
			}
			views[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		RenderID: renderID,
		Views:    make(map[string]Data, len(p.clients)),
	}
	for i, c := range p.clients {
		result.Views[c.Name()] = views[i]
	}

	log.Info("page assembled", "page", p.name, "clients", len(p.clients))
	return result, nil
}
