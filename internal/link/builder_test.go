package link

import (
	"testing"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/errors"
)

func TestNewURLBuilder(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"valid https", "https://shop.example.com", false},
		{"valid with port", "http://localhost:8080", false},
		{"missing scheme", "shop.example.com", true},
		{"empty", "", true},
		{"garbage", "://nope", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewURLBuilder(tt.base)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewURLBuilder(%q) error = %v, wantErr %v", tt.base, err, tt.wantErr)
			}
			if err != nil && !errors.IsConfiguration(err) {
				t.Errorf("NewURLBuilder(%q) error is not a ConfigurationError: %v", tt.base, err)
			}
		})
	}
}

func TestURLBuilder_StepURL(t *testing.T) {
	b, err := NewURLBuilder("https://shop.example.com")
	if err != nil {
		t.Fatalf("NewURLBuilder() error = %v", err)
	}

	tests := []struct {
		name   string
		step   checkout.Step
		params map[string]string
		want   string
	}{
		{
			name: "step only",
			step: checkout.StepPayment,
			want: "https://shop.example.com/checkout?step=payment",
		},
		{
			name:   "with params",
			step:   checkout.StepSummary,
			params: map[string]string{"flow": "standard"},
			want:   "https://shop.example.com/checkout?flow=standard&step=summary",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.StepURL(tt.step, tt.params); got != tt.want {
				t.Errorf("StepURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURLBuilder_BasketURL(t *testing.T) {
	b, err := NewURLBuilder("https://shop.example.com")
	if err != nil {
		t.Fatalf("NewURLBuilder() error = %v", err)
	}
	want := "https://shop.example.com/basket"
	if got := b.BasketURL(); got != want {
		t.Errorf("BasketURL() = %q, want %q", got, want)
	}
}
