package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/config"
	"github.com/storewave/storefront/internal/errors"
	"github.com/storewave/storefront/internal/logging"
)

func inlineConfig() *config.Config {
	return &config.Config{
		Shop: config.ShopConfig{BaseURL: "https://shop.example.com", Currency: "EUR"},
		Checkout: config.CheckoutConfig{
			Steps:       []string{"address", "payment", "process"},
			DefaultStep: "address",
		},
		Logging: config.LoggingConfig{Level: "info"},
	}
}

func TestFlowArg(t *testing.T) {
	if got := flowArg(nil); got != "" {
		t.Errorf("flowArg(nil) = %q, want empty", got)
	}
	if got := flowArg([]string{"express"}); got != "express" {
		t.Errorf("flowArg() = %q, want %q", got, "express")
	}
}

func TestLoadFlow_Inline(t *testing.T) {
	name, f, err := loadFlow(inlineConfig(), logging.NopLogger(), "")
	if err != nil {
		t.Fatalf("loadFlow() error = %v", err)
	}
	if name != "default" {
		t.Errorf("name = %q, want %q", name, "default")
	}
	if len(f.Steps) != 3 || f.Steps[1] != checkout.StepPayment {
		t.Errorf("flow steps = %v, want the inline pipeline", f.Steps)
	}
}

func TestLoadFlow_InlineRejectsNamedFlow(t *testing.T) {
	_, _, err := loadFlow(inlineConfig(), logging.NopLogger(), "express")
	if err == nil {
		t.Fatal("loadFlow(express) error = nil, want error without a flow file")
	}
}

func TestLoadFlow_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flows.yaml")
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

	cfg := inlineConfig()
	cfg.Checkout = config.CheckoutConfig{FlowFile: path}

	t.Run("default flow", func(t *testing.T) {
		name, f, err := loadFlow(cfg, logging.NopLogger(), "")
		if err != nil {
			t.Fatalf("loadFlow() error = %v", err)
		}
		if name != "standard" {
			t.Errorf("name = %q, want %q", name, "standard")
		}
		if len(f.OnePageSteps) != 0 {
			t.Errorf("OnePageSteps = %v, want none", f.OnePageSteps)
		}
	})

	t.Run("named flow", func(t *testing.T) {
		name, f, err := loadFlow(cfg, logging.NopLogger(), "express")
		if err != nil {
			t.Fatalf("loadFlow() error = %v", err)
		}
		if name != "express" {
			t.Errorf("name = %q, want %q", name, "express")
		}
		if len(f.OnePageSteps) != 2 {
			t.Errorf("OnePageSteps = %v, want 2 entries", f.OnePageSteps)
		}
	})

	t.Run("unknown flow", func(t *testing.T) {
		_, _, err := loadFlow(cfg, logging.NopLogger(), "bogus")
		if !errors.Is(err, errors.ErrFlowNotFound) {
			t.Errorf("loadFlow(bogus) error = %v, want %v", err, errors.ErrFlowNotFound)
		}
	})
}
