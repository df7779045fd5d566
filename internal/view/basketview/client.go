// Package basketview renders the basket summary region shown on every
// storefront page.
package basketview

import (
	"context"

	"github.com/storewave/storefront/internal/commerce"
	"github.com/storewave/storefront/internal/view"
)

// BasketService is the frontend controller the basket is gathered from.
type BasketService interface {
	Basket(ctx context.Context) (commerce.Basket, error)
}

// Client gathers the basket summary data.
type Client struct {
	baskets BasketService
}

// New creates a basket view client.
func New(baskets BasketService) *Client {
	return &Client{baskets: baskets}
}

// Name implements view.Client.
func (c *Client) Name() string { return "basket" }

// Gather implements view.Client.
func (c *Client) Gather(ctx context.Context) (view.Data, error) {
	basket, err := c.baskets.Basket(ctx)
	if err != nil {
		return nil, err
	}

	return view.Data{
		"empty":      basket.IsEmpty(),
		"itemCount":  basket.ItemCount(),
		"items":      basket.Items,
		"itemTotal":  basket.ItemTotal().Format(basket.Currency),
		"shipping":   basket.Shipping.Format(basket.Currency),
		"discount":   basket.Discount.Format(basket.Currency),
		"grandTotal": basket.GrandTotal().Format(basket.Currency),
		"voucher":    basket.Voucher,
	}, nil
}
