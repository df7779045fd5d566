package checkout

import (
	"fmt"
	"slices"

	"github.com/storewave/storefront/internal/errors"
)

// Flow is the configuration of one checkout pipeline.
type Flow struct {
	// Steps is the canonical pipeline in rendering order. Step names must
	// be unique; duplicates are a configuration error, not deduplicated.
	Steps []Step

	// OnePageSteps lists the steps collapsed into a single combined page.
	// Its first entry is the substitute step that stands in for the whole
	// collapsed region. May be empty.
	OnePageSteps []Step

	// DefaultStep is the fallback step when the request names none.
	DefaultStep Step
}

// Validate checks the flow for configuration errors: an empty pipeline or
// duplicate step names.
func (f Flow) Validate() error {
	if len(f.Steps) == 0 {
		return errors.NewConfigurationError("checkout flow is empty", errors.ErrNoSteps)
	}
	seen := make(map[Step]struct{}, len(f.Steps))
	for _, s := range f.Steps {
		if _, dup := seen[s]; dup {
			return errors.NewConfigurationError(
				fmt.Sprintf("step %q appears more than once", s), errors.ErrDuplicateStep)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// OneStepTarget returns the substitute step for the collapsed one-page
// region: the first one-page step if any are configured, else the default.
func (f Flow) OneStepTarget() Step {
	if len(f.OnePageSteps) > 0 {
		return f.OnePageSteps[0]
	}
	return f.DefaultStep
}

// Request carries the request-scoped inputs of one render.
type Request struct {
	// Requested is the step asked for via navigation parameters.
	// Empty means the request named no step.
	Requested Step

	// Active is the active step a previous render already settled on,
	// as carried by the caller. Empty means none was set.
	Active Step

	// NextFixed is true when the caller has already fixed the next-step
	// target externally; no next target is computed in that case.
	NextFixed bool
}

// Resolution is the computed sequencing for one render.
type Resolution struct {
	// Steps is the navigable pipeline: the configured steps with the
	// collapsed one-page region removed, order preserved.
	Steps []Step

	// Active is the step to render. Always a member of Steps.
	Active Step

	// Before and After are the prefix and suffix of Steps around Active,
	// so Before ++ [Active] ++ After == Steps.
	Before []Step
	After  []Step

	// Back is the step the back control should link to. Empty means the
	// active step is the first one and the back control leaves the
	// checkout (typically to the basket page).
	Back Step

	// Next is the step the next control should link to. Empty means there
	// is no next step, or the caller fixed the next target externally.
	Next Step

	// Recovered is true when the resolved active step was not a member of
	// the navigable pipeline and the sequencer fell back to the first
	// step. This indicates a flow/one-page mismatch the caller should log.
	Recovered bool
}

// Resolve computes the step sequencing for one render. It is deterministic
// and side-effect free: the same flow and request always produce the same
// resolution.
//
// The active step is chosen between the request's candidate step and the
// caller-carried active step. The candidate wins only when no active step
// was carried, or when it sits strictly earlier in the pipeline — a render
// never jumps forward past the step a previous render settled on.
func Resolve(flow Flow, req Request) (Resolution, error) {
	if err := flow.Validate(); err != nil {
		return Resolution{}, err
	}

	oneStep := flow.OneStepTarget()

	// Drop the collapsed one-page steps, keeping the configured order.
	reduced := make([]Step, 0, len(flow.Steps))
	for _, s := range flow.Steps {
		if !contains(flow.OnePageSteps, s) {
			reduced = append(reduced, s)
		}
	}
	if len(reduced) == 0 {
		return Resolution{}, errors.NewConfigurationError(
			"every step is collapsed into the one-page view", errors.ErrEmptyPipeline)
	}

	def := flow.DefaultStep
	if !contains(reduced, def) {
		def = reduced[0]
	}

	current := req.Requested
	if !current.IsSet() {
		current = def
	}
	if !contains(reduced, current) {
		// The requested step was collapsed away; the substitute step
		// stands in for the whole one-page region.
		current = oneStep
	}

	active := req.Active
	if active.IsSet() && contains(flow.OnePageSteps, active) {
		active = oneStep
	}

	currentPos, currentFound := indexOf(reduced, current)
	activePos, activeFound := indexOf(reduced, active)

	// Prefer the requested step only when it is strictly earlier than the
	// carried active step; otherwise keep what the previous render chose.
	// When either position is unknown the carried step wins and the
	// recovery below normalizes the result.
	resolved := active
	if !active.IsSet() || (currentFound && activeFound && currentPos < activePos) {
		resolved = current
	}

	pos, found := indexOf(reduced, resolved)
	recovered := false
	if !found {
		resolved = reduced[0]
		pos = 0
		recovered = true
	}

	res := Resolution{
		Steps:     reduced,
		Active:    resolved,
		Before:    slices.Clone(reduced[:pos]),
		After:     slices.Clone(reduced[pos+1:]),
		Recovered: recovered,
	}
	if pos > 0 {
		res.Back = reduced[pos-1]
	}
	if !req.NextFixed && pos+1 < len(reduced) {
		res.Next = reduced[pos+1]
	}
	return res, nil
}
