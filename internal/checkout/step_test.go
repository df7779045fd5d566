package checkout

import "testing"

func TestStep_IsSet(t *testing.T) {
	tests := []struct {
		step Step
		want bool
	}{
		{StepAddress, true},
		{"custom", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			if got := tt.step.IsSet(); got != tt.want {
				t.Errorf("IsSet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	steps := []Step{StepAddress, StepDelivery, StepPayment}

	tests := []struct {
		name      string
		step      Step
		wantIdx   int
		wantFound bool
	}{
		{"first", StepAddress, 0, true},
		{"middle", StepDelivery, 1, true},
		{"last", StepPayment, 2, true},
		{"absent", StepSummary, 0, false},
		{"unset", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found := indexOf(steps, tt.step)
			if idx != tt.wantIdx || found != tt.wantFound {
				t.Errorf("indexOf() = (%d, %v), want (%d, %v)", idx, found, tt.wantIdx, tt.wantFound)
			}
		})
	}
}
