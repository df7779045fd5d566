// Package flow loads named checkout flows from a YAML definition file and
// keeps them available to renders, optionally hot-reloading the file when
// it changes on disk.
package flow

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/storewave/storefront/internal/checkout"
	"github.com/storewave/storefront/internal/errors"
	"github.com/storewave/storefront/internal/logging"
)

// flowFile is the on-disk YAML shape.
type flowFile struct {
	DefaultFlow string                  `yaml:"default_flow"`
	Flows       map[string]flowFileFlow `yaml:"flows"`
}

type flowFileFlow struct {
	Steps        []string `yaml:"steps"`
	OnePageSteps []string `yaml:"one_page_steps"`
	DefaultStep  string   `yaml:"default_step"`
}

// Registry holds the loaded checkout flows. Lookups see a consistent
// snapshot: a reload swaps the whole flow map, so renders in flight keep
// the flows they started with.
type Registry struct {
	path string
	log  *logging.Logger

	mu    sync.RWMutex
	def   string
	flows map[string]checkout.Flow
}

// Load reads and validates the flow definition file at path.
func Load(path string, log *logging.Logger) (*Registry, error) {
	r := &Registry{path: path, log: log}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the definition file. On error the registry keeps its
// previous contents.
func (r *Registry) Reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return errors.NewConfigurationError("cannot read flow file", err).WithField("checkout.flow_file")
	}

	var file flowFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.NewConfigurationError("cannot parse flow file", err).WithField("checkout.flow_file")
	}

	def, flows, err := buildFlows(file)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.def = def
	r.flows = flows
	r.mu.Unlock()

	r.log.Info("checkout flows loaded", "path", r.path, "flows", len(flows), "default", def)
	return nil
}

// buildFlows converts the file shape into validated checkout flows.
func buildFlows(file flowFile) (string, map[string]checkout.Flow, error) {
	if len(file.Flows) == 0 {
		return "", nil, errors.NewConfigurationError("flow file defines no flows", errors.ErrNoSteps).
			WithField("flows")
	}

	flows := make(map[string]checkout.Flow, len(file.Flows))
	for name, ff := range file.Flows {
		f := checkout.Flow{
			Steps:        toSteps(ff.Steps),
			OnePageSteps: toSteps(ff.OnePageSteps),
			DefaultStep:  checkout.Step(ff.DefaultStep),
		}
		if err := validateFlow(name, f); err != nil {
			return "", nil, err
		}
		flows[name] = f
	}

	def := file.DefaultFlow
	if def == "" {
		// A single flow needs no explicit default.
		if len(flows) == 1 {
			for name := range flows {
				def = name
			}
		} else {
			return "", nil, errors.NewConfigurationError(
				"default_flow is required when multiple flows are defined", nil).WithField("default_flow")
		}
	}
	if _, ok := flows[def]; !ok {
		return "", nil, errors.NewConfigurationError(
			fmt.Sprintf("default flow %q is not defined", def), errors.ErrFlowNotFound).
			WithField("default_flow")
	}

	return def, flows, nil
}

// validateFlow layers file-level checks on top of the sequencer's own
// flow validation: one-page steps must be flow members, and the default
// step must exist.
func validateFlow(name string, f checkout.Flow) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("flow %q: %w", name, err)
	}

	members := make(map[checkout.Step]struct{}, len(f.Steps))
	for _, s := range f.Steps {
		members[s] = struct{}{}
	}

	for _, s := range f.OnePageSteps {
		if _, ok := members[s]; !ok {
			return errors.NewConfigurationError(
				fmt.Sprintf("flow %q: one-page step %q", name, s), errors.ErrStepNotInFlow).
				WithField("flows." + name + ".one_page_steps")
		}
	}

	if !f.DefaultStep.IsSet() {
		return errors.NewConfigurationError(
			fmt.Sprintf("flow %q: default_step is required", name), nil).
			WithField("flows." + name + ".default_step")
	}
	if _, ok := members[f.DefaultStep]; !ok {
		return errors.NewConfigurationError(
			fmt.Sprintf("flow %q: default step %q", name, f.DefaultStep), errors.ErrStepNotInFlow).
			WithField("flows." + name + ".default_step")
	}

	return nil
}

func toSteps(names []string) []checkout.Step {
	if len(names) == 0 {
		return nil
	}
	steps := make([]checkout.Step, len(names))
	for i, n := range names {
		steps[i] = checkout.Step(n)
	}
	return steps
}

// Path returns the definition file the registry was loaded from.
func (r *Registry) Path() string {
	return r.path
}

// Flow returns the named flow.
func (r *Registry) Flow(name string) (checkout.Flow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flows[name]
	if !ok {
		return checkout.Flow{}, fmt.Errorf("flow %q: %w", name, errors.ErrFlowNotFound)
	}
	return f, nil
}

// Default returns the default flow and its name.
func (r *Registry) Default() (string, checkout.Flow) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def, r.flows[r.def]
}

// Names returns the defined flow names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.flows))
	for name := range r.flows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
