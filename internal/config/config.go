package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/storewave/storefront/internal/checkout"
)

// Config represents the complete storefront configuration
type Config struct {
	Shop     ShopConfig     `mapstructure:"shop"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ShopConfig identifies the shop the views render for
type ShopConfig struct {
	// BaseURL is the absolute URL the link builder roots step links at
	BaseURL string `mapstructure:"base_url"`
	// Currency is the ISO 4217 code used when formatting amounts
	Currency string `mapstructure:"currency"`
}

// CheckoutConfig controls the checkout step pipeline
type CheckoutConfig struct {
	// FlowFile points at a YAML file defining named flows. When set it
	// takes precedence over the inline step settings below.
	FlowFile string `mapstructure:"flow_file"`
	// Steps is the canonical pipeline order (inline single-flow setup)
	Steps []string `mapstructure:"steps"`
	// OnePageSteps lists the steps collapsed into the one-page view
	OnePageSteps []string `mapstructure:"one_page_steps"`
	// DefaultStep is the fallback step when a request names none
	DefaultStep string `mapstructure:"default_step"`
}

// LoggingConfig controls the render log
type LoggingConfig struct {
	// Level is the minimum level written: debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log file path; empty logs to stderr
	File string `mapstructure:"file"`
}

// Flow converts the inline checkout settings into a sequencer flow.
func (c CheckoutConfig) Flow() checkout.Flow {
	f := checkout.Flow{
		DefaultStep: checkout.Step(c.DefaultStep),
	}
	for _, s := range c.Steps {
		f.Steps = append(f.Steps, checkout.Step(s))
	}
	for _, s := range c.OnePageSteps {
		f.OnePageSteps = append(f.OnePageSteps, checkout.Step(s))
	}
	return f
}

// SetDefaults registers the default configuration values with viper.
// Called before reading the config file so defaults apply even without one.
func SetDefaults() {
	viper.SetDefault("shop.base_url", "http://localhost:8080")
	viper.SetDefault("shop.currency", "EUR")

	viper.SetDefault("checkout.steps", []string{
		"address", "delivery", "payment", "summary", "process",
	})
	viper.SetDefault("checkout.one_page_steps", []string{})
	viper.SetDefault("checkout.default_step", "address")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}

// Load unmarshals the current viper state into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigDir returns the directory storefront config is read from,
// honoring XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "storefront")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "storefront")
}
