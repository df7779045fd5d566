package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/config"
	"github.com/storewave/storefront/internal/flow"
	"github.com/storewave/storefront/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront presentation layer toolkit",
	Long: `Storefront assembles the view data of an e-commerce shop frontend:
basket, catalog, account, and checkout regions, with a configurable
multi-step (or one-page) checkout pipeline.

The CLI inspects and validates checkout flows and renders page view
data from fixture services.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/storefront/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/storefront")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("STOREFRONT")
	// Replace dots with underscores for nested keys in env vars
	// e.g., STOREFRONT_SHOP_CURRENCY for shop.currency
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig loads and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration:\n%s", config.ValidationErrors(errs).Error())
	}
	return cfg, nil
}

// newLogger creates the render logger from the logging configuration.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
}

// loadFlow resolves the flow to operate on: the named flow from the flow
// file when one is configured, otherwise the inline checkout settings.
// An empty name selects the default flow.
func loadFlow(cfg *config.Config, log *logging.Logger, name string) (string, checkout.Flow, error) {
	if cfg.Checkout.FlowFile != "" {
		reg, err := flow.Load(cfg.Checkout.FlowFile, log)
		if err != nil {
			return "", checkout.Flow{}, err
		}
		if name == "" {
			def, f := reg.Default()
			return def, f, nil
		}
		f, err := reg.Flow(name)
		if err != nil {
			return "", checkout.Flow{}, err
		}
		return name, f, nil
	}

	if name != "" && name != "default" {
		return "", checkout.Flow{}, fmt.Errorf("flow %q: no flow file configured", name)
	}
	return "default", cfg.Checkout.Flow(), nil
}
