// Package commerce defines the shop data models the view clients gather:
// baskets, products, reviews, and customers. Monetary amounts are integer
// cents to keep totals exact.
package commerce

import (
	"fmt"
	"time"
)

// Cents is a monetary amount in the shop currency's smallest unit.
type Cents int64

// Format renders the amount with two decimals and the given currency code,
// e.g. "24.99 EUR".
func (c Cents) Format(currency string) string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, v/100, v%100, currency)
}

// LineItem is one basket position.
type LineItem struct {
	SKU       string `json:"sku"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice Cents  `json:"unit_price_cents"`
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() Cents {
	return li.UnitPrice * Cents(li.Quantity)
}

// Basket is the customer's current basket.
type Basket struct {
	ID       string     `json:"id"`
	Items    []LineItem `json:"items"`
	Shipping Cents      `json:"shipping_cents"`
	Discount Cents      `json:"discount_cents"`
	Currency string     `json:"currency"`
	Voucher  string     `json:"voucher,omitempty"`
}

// IsEmpty returns true if the basket holds no items.
func (b Basket) IsEmpty() bool {
	return len(b.Items) == 0
}

// ItemCount returns the total quantity across all positions.
func (b Basket) ItemCount() int {
	n := 0
	for _, li := range b.Items {
		n += li.Quantity
	}
	return n
}

// ItemTotal returns the sum of all position subtotals, before shipping
// and discounts.
func (b Basket) ItemTotal() Cents {
	var total Cents
	for _, li := range b.Items {
		total += li.Subtotal()
	}
	return total
}

// GrandTotal returns the amount to pay: items plus shipping minus discount.
// Never negative.
func (b Basket) GrandTotal() Cents {
	total := b.ItemTotal() + b.Shipping - b.Discount
	if total < 0 {
		return 0
	}
	return total
}

// Product is a catalog article as shown on listing and detail pages.
type Product struct {
	SKU         string `json:"sku"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       Cents  `json:"price_cents"`
	Currency    string `json:"currency"`
	InStock     bool   `json:"in_stock"`
	Rating      int    `json:"rating"` // average rating, 0-5; 0 means unrated
}

// Review is a customer product review.
type Review struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"` // 1-5
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer is the account the basket and reviews belong to.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
