// Package internal contains integration tests that verify the storefront
// packages work together correctly: flow definitions loaded from disk
// driving the checkout view client inside an assembled page.
package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/commerce"
	"github.com/storewave/storefront/internal/flow"
	"github.com/storewave/storefront/internal/link"
	"github.com/storewave/storefront/internal/logging"
	"github.com/storewave/storefront/internal/view"
	"github.com/storewave/storefront/internal/view/basketview"
	"github.com/storewave/storefront/internal/view/checkoutview"
)

// memoryBaskets is an in-memory basket service.
type memoryBaskets struct {
	basket commerce.Basket
}

func (m *memoryBaskets) Basket(ctx context.Context) (commerce.Basket, error) {
	return m.basket, nil
}

// TestFlowFileToPageAssembly loads flows from a YAML file and renders the
// checkout page for the one-page flow end to end.
func TestFlowFileToPageAssembly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flows.yaml")
	contents := `
default_flow: standard
flows:
  standard:
    steps: [address, delivery, payment, summary, process]
    default_step: address
  express:
    steps: [address, delivery, payment, summary, process]
    one_page_steps: [address, delivery]
    default_step: payment
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write flow file: %v", err)
	}

	log := logging.NopLogger()
	reg, err := flow.Load(path, log)
	if err != nil {
		t.Fatalf("flow.Load() error = %v", err)
	}

	express, err := reg.Flow("express")
	if err != nil {
		t.Fatalf("Flow(express) error = %v", err)
	}

	links, err := link.NewURLBuilder("https://shop.example.com")
	if err != nil {
		t.Fatalf("NewURLBuilder() error = %v", err)
	}

	baskets := &memoryBaskets{basket: commerce.Basket{
		ID:       "b-1",
		Items:    []commerce.LineItem{{SKU: "MUG-01", Quantity: 1, UnitPrice: 899}},
		Currency: "EUR",
	}}

	req := checkout.Request{Requested: checkout.StepSummary}
	page, err := view.NewPage("checkout", log,
		basketview.New(baskets),
		checkoutview.New("express", express, req, baskets, links, log),
	)
	if err != nil {
		t.Fatalf("NewPage() error = %v", err)
	}

	result, err := page.Assemble(context.Background())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if result.RenderID == "" {
		t.Error("RenderID is empty")
	}

	checkoutData, ok := result.Views["checkout"]
	if !ok {
		t.Fatal("checkout view data missing")
	}
	if checkoutData["activeStep"] != checkout.StepSummary {
		t.Errorf("activeStep = %v, want %q", checkoutData["activeStep"], checkout.StepSummary)
	}

	nav, ok := checkoutData["navigation"].(checkoutview.Navigation)
	if !ok {
		t.Fatalf("navigation has type %T, want checkoutview.Navigation", checkoutData["navigation"])
	}
	if nav.Back != "https://shop.example.com/checkout?flow=express&step=payment" {
		t.Errorf("Back = %q, want payment step link", nav.Back)
	}
	if nav.Next != "https://shop.example.com/checkout?flow=express&step=process" {
		t.Errorf("Next = %q, want process step link", nav.Next)
	}

	basketData, ok := result.Views["basket"]
	if !ok {
		t.Fatal("basket view data missing")
	}
	if basketData["grandTotal"] != "8.99 EUR" {
		t.Errorf("grandTotal = %v, want %q", basketData["grandTotal"], "8.99 EUR")
	}
}

// TestConfiguredFlowChangeAffectsNextRender reloads the flow file and
// checks that a new page render sees the updated pipeline.
func TestConfiguredFlowChangeAffectsNextRender(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flows.yaml")
	if err := os.WriteFile(path, []byte(`
flows:
  standard:
    steps: [address, payment, process]
    default_step: address
`), 0644); err != nil {
		t.Fatalf("failed to write flow file: %v", err)
	}

	log := logging.NopLogger()
	reg, err := flow.Load(path, log)
	if err != nil {
		t.Fatalf("flow.Load() error = %v", err)
	}

	_, before := reg.Default()
	res, err := checkout.Resolve(before, checkout.Request{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(res.Steps) != 3 {
		t.Fatalf("initial pipeline has %d steps, want 3", len(res.Steps))
	}

	if err := os.WriteFile(path, []byte(`
flows:
  standard:
    steps: [address, delivery, payment, summary, process]
    default_step: delivery
`), 0644); err != nil {
		t.Fatalf("failed to rewrite flow file: %v", err)
	}
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	_, after := reg.Default()
	res, err = checkout.Resolve(after, checkout.Request{})
	if err != nil {
		t.Fatalf("Resolve() after reload error = %v", err)
	}
	if len(res.Steps) != 5 {
		t.Errorf("reloaded pipeline has %d steps, want 5", len(res.Steps))
	}
	if res.Active != checkout.StepDelivery {
		t.Errorf("Active = %q, want %q", res.Active, checkout.StepDelivery)
	}
}
