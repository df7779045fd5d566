package checkoutview

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/commerce"
	"github.com/storewave/storefront/internal/errors"
	"github.com/storewave/storefront/internal/logging"
)

// stubBaskets returns a fixed basket.
type stubBaskets struct {
	basket commerce.Basket
	err    error
}

func (s *stubBaskets) Basket(ctx context.Context) (commerce.Basket, error) {
	return s.basket, s.err
}

// stubLinks builds predictable URLs without a configured shop.
type stubLinks struct{}

func (stubLinks) StepURL(step checkout.Step, params map[string]string) string {
	return "/checkout?step=" + step.String()
}

func (stubLinks) BasketURL() string { return "/basket" }

func standardFlow() checkout.Flow {
	return checkout.Flow{
		Steps: []checkout.Step{
			checkout.StepAddress, checkout.StepDelivery, checkout.StepPayment,
			checkout.StepSummary, checkout.StepProcess,
		},
		DefaultStep: checkout.StepAddress,
	}
}

func testBasket() commerce.Basket {
	return commerce.Basket{
		ID:       "b-1",
		Items:    []commerce.LineItem{{SKU: "SKU-1", Quantity: 2, UnitPrice: 899}},
		Currency: "EUR",
	}
}

func TestClient_Gather(t *testing.T) {
	c := New("standard", standardFlow(),
		checkout.Request{Requested: checkout.StepPayment},
		&stubBaskets{basket: testBasket()}, stubLinks{}, logging.NopLogger())

	data, err := c.Gather(context.Background())
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	if data["activeStep"] != checkout.StepPayment {
		t.Errorf("activeStep = %v, want %q", data["activeStep"], checkout.StepPayment)
	}
	wantBefore := []checkout.Step{checkout.StepAddress, checkout.StepDelivery}
	if diff := cmp.Diff(wantBefore, data["stepsBefore"], cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stepsBefore mismatch (-want +got):\n%s", diff)
	}
	if data["total"] != "17.98 EUR" {
		t.Errorf("total = %v, want %q", data["total"], "17.98 EUR")
	}

	nav, ok := data["navigation"].(Navigation)
	if !ok {
		t.Fatalf("navigation has type %T, want Navigation", data["navigation"])
	}
	if nav.Back != "/checkout?step=delivery" {
		t.Errorf("Back = %q, want %q", nav.Back, "/checkout?step=delivery")
	}
	if nav.BackExternal {
		t.Error("BackExternal = true, want false")
	}
	if nav.Next != "/checkout?step=summary" {
		t.Errorf("Next = %q, want %q", nav.Next, "/checkout?step=summary")
	}
}

func TestClient_GatherFirstStepBackLeavesCheckout(t *testing.T) {
	c := New("standard", standardFlow(), checkout.Request{},
		&stubBaskets{basket: testBasket()}, stubLinks{}, logging.NopLogger())

	data, err := c.Gather(context.Background())
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	nav := data["navigation"].(Navigation)
	if nav.Back != "/basket" {
		t.Errorf("Back = %q, want %q", nav.Back, "/basket")
	}
	if !nav.BackExternal {
		t.Error("BackExternal = false, want true")
	}
}

func TestClient_GatherLastStepHasNoNext(t *testing.T) {
	c := New("standard", standardFlow(),
		checkout.Request{Requested: checkout.StepProcess},
		&stubBaskets{basket: testBasket()}, stubLinks{}, logging.NopLogger())

	data, err := c.Gather(context.Background())
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	nav := data["navigation"].(Navigation)
	if nav.Next != "" {
		t.Errorf("Next = %q, want empty on the last step", nav.Next)
	}
}

func TestClient_GatherMisconfiguredFlow(t *testing.T) {
	c := New("broken", checkout.Flow{}, checkout.Request{},
		&stubBaskets{basket: testBasket()}, stubLinks{}, logging.NopLogger())

	_, err := c.Gather(context.Background())
	if !errors.Is(err, errors.ErrNoSteps) {
		t.Errorf("Gather() error = %v, want %v", err, errors.ErrNoSteps)
	}
}

func TestClient_GatherBasketFailure(t *testing.T) {
	boom := errors.New("basket service down")
	c := New("standard", standardFlow(), checkout.Request{},
		&stubBaskets{err: boom}, stubLinks{}, logging.NopLogger())

	_, err := c.Gather(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Gather() error = %v, want %v", err, boom)
	}
}
