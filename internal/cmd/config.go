package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if file := viper.ConfigFileUsed(); file != "" {
		fmt.Println(muted("config file: ") + file)
	} else {
		fmt.Println(muted("config file: ") + "(defaults)")
	}

	fmt.Println(bold("shop"))
	fmt.Printf("  base_url: %s\n", cfg.Shop.BaseURL)
	fmt.Printf("  currency: %s\n", cfg.Shop.Currency)

	fmt.Println(bold("checkout"))
	if cfg.Checkout.FlowFile != "" {
		fmt.Printf("  flow_file: %s\n", cfg.Checkout.FlowFile)
	} else {
		fmt.Printf("  steps: %v\n", cfg.Checkout.Steps)
		if len(cfg.Checkout.OnePageSteps) > 0 {
			fmt.Printf("  one_page_steps: %v\n", cfg.Checkout.OnePageSteps)
		}
		fmt.Printf("  default_step: %s\n", cfg.Checkout.DefaultStep)
	}

	fmt.Println(bold("logging"))
	fmt.Printf("  level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Printf("  file: %s\n", cfg.Logging.File)
	}
	return nil
}
