package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/commerce"
	"github.com/storewave/storefront/internal/link"
	"github.com/storewave/storefront/internal/view"
	"github.com/storewave/storefront/internal/view/accountview"
	"github.com/storewave/storefront/internal/view/basketview"
	"github.com/storewave/storefront/internal/view/catalogview"
	"github.com/storewave/storefront/internal/view/checkoutview"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Assemble the checkout page view data from fixture services",
	Long: `Assemble the checkout page the way the shop frontend would: run the
basket, checkout, catalog, and account view clients against built-in
fixture services and print the gathered view data as JSON.

Useful for inspecting what the templates would receive for a given
step request without running a shop.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var (
	renderStep   string
	renderActive string
	renderFlow   string
)

func init() {
	renderCmd.Flags().StringVar(&renderStep, "step", "", "requested checkout step")
	renderCmd.Flags().StringVar(&renderActive, "active", "", "active step carried from a previous render")
	renderCmd.Flags().StringVar(&renderFlow, "flow", "", "checkout flow to render (default: configured default flow)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	name, f, err := loadFlow(cfg, log, renderFlow)
	if err != nil {
		return err
	}

	links, err := link.NewURLBuilder(cfg.Shop.BaseURL)
	if err != nil {
		return err
	}

	req := checkout.Request{
		Requested: checkout.Step(renderStep),
		Active:    checkout.Step(renderActive),
	}

	fix := newFixtures(cfg.Shop.Currency)
	page, err := view.NewPage("checkout", log,
		basketview.New(fix),
		checkoutview.New(name, f, req, fix, links, log),
		catalogview.New(fix),
		accountview.New(fix, fix),
	)
	if err != nil {
		return err
	}

	result, err := page.Assemble(cmd.Context())
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// fixtures is an in-memory stand-in for the frontend controllers. The real
// shop supplies these services; the CLI only needs plausible data.
type fixtures struct {
	currency string
}

func newFixtures(currency string) *fixtures {
	return &fixtures{currency: currency}
}

func (f *fixtures) Basket(ctx context.Context) (commerce.Basket, error) {
	return commerce.Basket{
		ID: "fixture-basket",
		Items: []commerce.LineItem{
			{SKU: "MUG-01", Title: "Stoneware mug", Quantity: 2, UnitPrice: 899},
			{SKU: "POSTER-07", Title: "Letterpress poster", Quantity: 1, UnitPrice: 1500},
		},
		Shipping: 495,
		Currency: f.currency,
	}, nil
}

func (f *fixtures) Products(ctx context.Context) ([]commerce.Product, error) {
	return []commerce.Product{
		{SKU: "MUG-01", Title: "Stoneware mug", Price: 899, Currency: f.currency, InStock: true, Rating: 5},
		{SKU: "POSTER-07", Title: "Letterpress poster", Price: 1500, Currency: f.currency, InStock: true, Rating: 4},
		{SKU: "SHIRT-02", Title: "Organic cotton shirt", Price: 2500, Currency: f.currency},
	}, nil
}

func (f *fixtures) Customer(ctx context.Context) (commerce.Customer, error) {
	return commerce.Customer{ID: "fixture-customer", Email: "jo@example.com", Name: "Jo Fixture"}, nil
}

func (f *fixtures) ReviewsByCustomer(ctx context.Context, customerID string) ([]commerce.Review, error) {
	return []commerce.Review{
		{ID: "r-1", SKU: "MUG-01", Author: "Jo Fixture", Rating: 5, Text: "Keeps coffee hot."},
	}, nil
}
