package checkout

// Step identifies one phase of the checkout pipeline. Steps compare by
// exact string match; the empty string means "no step".
type Step string

// Standard step names used by the default flow. Shops may configure
// site-specific names; nothing in the sequencer depends on this set.
const (
	// StepAddress collects billing and shipping addresses.
	StepAddress Step = "address"

	// StepDelivery selects the shipping method.
	StepDelivery Step = "delivery"

	// StepPayment selects the payment method.
	StepPayment Step = "payment"

	// StepSummary shows the order summary for confirmation.
	StepSummary Step = "summary"

	// StepProcess submits the order.
	StepProcess Step = "process"
)

// String returns the string representation of the step.
func (s Step) String() string {
	return string(s)
}

// IsSet returns true if the step names an actual step.
func (s Step) IsSet() bool {
	return s != ""
}

// indexOf returns the position of step in steps, or false if it is not
// present (or not set). The boolean replaces the "not found" sentinel
// index the position lookups would otherwise need.
func indexOf(steps []Step, step Step) (int, bool) {
	if !step.IsSet() {
		return 0, false
	}
	for i, s := range steps {
		if s == step {
			return i, true
		}
	}
	return 0, false
}

// contains returns true if step appears in steps.
func contains(steps []Step, step Step) bool {
	_, ok := indexOf(steps, step)
	return ok
}
