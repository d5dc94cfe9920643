package scenario

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/simstate"
)

// Run builds the scenario's network from scratch, executes every step
// in document order, then runs every validator — recording each
// outcome rather than aborting on the first failure, so the returned
// Result always reflects the complete run.
func Run(store *graph.Store, sim *simstate.State, s Scenario) (*Result, error) {
	if err := runSetup(store, s.Setup); err != nil {
		return nil, fmt.Errorf("scenario %q: setup: %w", s.Name, err)
	}

	result := &Result{ScenarioName: s.Name, Passed: true}
	for _, step := range s.Steps {
		sr := runStep(store, sim, step)
		result.Steps = append(result.Steps, sr)
		if !sr.Passed {
			result.Passed = false
		}
	}
	for _, v := range s.Validation {
		vr := runValidator(store, v)
		result.Validations = append(result.Validations, vr)
		if !vr.Passed {
			result.Passed = false
		}
	}
	return result, nil
}
