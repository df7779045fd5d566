package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/flow"
	"github.com/storewave/storefront/internal/tui"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Inspect and validate checkout flows",
}

var flowShowCmd = &cobra.Command{
	Use:   "show [flow]",
	Short: "Show a checkout flow's step pipeline",
	Long: `Display the configured step pipeline of a checkout flow, the
navigable sequence after one-page collapsing, and the default step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFlowShow,
}

var flowCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the checkout flow configuration",
	Args:  cobra.NoArgs,
	RunE:  runFlowCheck,
}

var flowBrowseCmd = &cobra.Command{
	Use:   "browse [flow]",
	Short: "Interactively walk a checkout flow",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFlowBrowse,
}

func init() {
	flowCmd.AddCommand(flowShowCmd)
	flowCmd.AddCommand(flowCheckCmd)
	flowCmd.AddCommand(flowBrowseCmd)
	rootCmd.AddCommand(flowCmd)
}

// flowArg extracts the optional flow name argument.
func flowArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func runFlowShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	name, f, err := loadFlow(cfg, log, flowArg(args))
	if err != nil {
		return err
	}

	res, err := checkout.Resolve(f, checkout.Request{})
	if err != nil {
		return err
	}

	fmt.Println(bold("flow: ") + accent(name))
	fmt.Println(muted("configured: ") + joinSteps(f.Steps))
	if len(f.OnePageSteps) > 0 {
		fmt.Println(muted("one-page:   ") + joinSteps(f.OnePageSteps))
	}
	fmt.Println(muted("navigable:  ") + joinSteps(res.Steps))
	fmt.Println(muted("default:    ") + f.DefaultStep.String() + muted("  initial active: ") + res.Active.String())
	return nil
}

func joinSteps(steps []checkout.Step) string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.String()
	}
	return strings.Join(names, muted(" → "))
}

func runFlowCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Println(errorMsg("%v", err))
		return fmt.Errorf("configuration is invalid")
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	names := []string{""}
	if cfg.Checkout.FlowFile != "" {
		// Validate every flow in the file, not just the default.
		reg, err := flow.Load(cfg.Checkout.FlowFile, log)
		if err != nil {
			fmt.Println(errorMsg("%v", err))
			return fmt.Errorf("flow file is invalid")
		}
		names = reg.Names()
	}

	failed := false
	for _, name := range names {
		resolved, f, err := loadFlow(cfg, log, name)
		if err != nil {
			fmt.Println(errorMsg("%s: %v", name, err))
			failed = true
			continue
		}
		if _, err := checkout.Resolve(f, checkout.Request{}); err != nil {
			fmt.Println(errorMsg("%s: %v", resolved, err))
			failed = true
			continue
		}
		fmt.Println(successMsg("%s: %d steps, default %q", resolved, len(f.Steps), f.DefaultStep))
	}
	if failed {
		return fmt.Errorf("flow validation failed")
	}
	return nil
}

func runFlowBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	name, f, err := loadFlow(cfg, log, flowArg(args))
	if err != nil {
		return err
	}

	return tui.Run(name, f)
}
