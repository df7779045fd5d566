// Package catalogview renders product listing regions.
package catalogview

import (
	"context"

	"github.com/storewave/storefront/internal/commerce"
	"github.com/storewave/storefront/internal/view"
)

// ProductService is the frontend controller product data is gathered from.
type ProductService interface {
	// Products returns the articles of the listing being rendered, already
	// filtered and ordered by the controller.
	Products(ctx context.Context) ([]commerce.Product, error)
}

// Client gathers the product listing data.
type Client struct {
	products ProductService
}

// New creates a catalog view client.
func New(products ProductService) *Client {
	return &Client{products: products}
}

// Name implements view.Client.
func (c *Client) Name() string { return "catalog" }

// Gather implements view.Client.
func (c *Client) Gather(ctx context.Context) (view.Data, error) {
	products, err := c.products.Products(ctx)
	if err != nil {
		return nil, err
	}

	available := 0
	for _, p := range products {
		if p.InStock {
			available++
		}
	}

	return view.Data{
		"products":  products,
		"count":     len(products),
		"available": available,
	}, nil
}
