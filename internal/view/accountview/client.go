// Package accountview renders the account region: the signed-in customer
// and their product reviews.
package accountview

import (
	"context"

	"github.com/storewave/storefront/internal/commerce"
	"github.com/storewave/storefront/internal/view"
)

// CustomerService is the frontend controller the customer is gathered from.
type CustomerService interface {
	Customer(ctx context.Context) (commerce.Customer, error)
}

// ReviewService is the frontend controller reviews are gathered from.
// Review persistence and moderation live behind this boundary.
type ReviewService interface {
	ReviewsByCustomer(ctx context.Context, customerID string) ([]commerce.Review, error)
}

// Client gathers the account region data.
type Client struct {
	customers CustomerService
	reviews   ReviewService
}

// New creates an account view client.
func New(customers CustomerService, reviews ReviewService) *Client {
	return &Client{customers: customers, reviews: reviews}
}

// Name implements view.Client.
func (c *Client) Name() string { return "account" }

// Gather implements view.Client.
func (c *Client) Gather(ctx context.Context) (view.Data, error) {
	customer, err := c.customers.Customer(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := c.reviews.ReviewsByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	return view.Data{
		"customer":    customer,
		"reviews":     reviews,
		"reviewCount": len(reviews),
	}, nil
}
