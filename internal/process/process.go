// Package process applies ordered sequences of heat/work exchanges to a
// system, one first-law application per step.
package process

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"thermolab/internal/thermo"
)

// Step is one energy exchange: heat added to the system and work done by
// the system, both in Joules. Steps are independent; each one shifts the
// internal energy by Q - W.
type Step struct {
	Label     string  `yaml:"label"`
	HeatAdded float64 `yaml:"heat_added"`
	WorkDone  float64 `yaml:"work_done"`
}

// Trajectory is the result of applying a step sequence.
type Trajectory struct {
	// Energies holds the internal energy before any step followed by the
	// value after each step, so len(Energies) == steps+1.
	Energies []float64
	Final    *thermo.System
}

// LoadSteps reads a YAML step file: a top-level sequence of steps.
// An absent file is thermo.ErrNotFound and any other read failure is
// thermo.ErrIO, matching the statefile kinds.
func LoadSteps(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s: %w", path, thermo.ErrNotFound)
		}
		return nil, fmt.Errorf("load steps from %s: %w: %w", path, thermo.ErrIO, err)
	}

	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse steps %s: %w", path, err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("steps %s: no steps defined", path)
	}
	return steps, nil
}

// Apply runs the steps against a copy of initial and returns the
// internal-energy trajectory. A non-finite step value fails with the step
// index and field named and no partial result.
func Apply(initial *thermo.System, steps []Step) (*Trajectory, error) {
	if initial == nil {
		return nil, fmt.Errorf("input must be a thermodynamic system: %w", thermo.ErrNotNumeric)
	}

	energy := initial.InternalEnergy()
	energies := make([]float64, 0, len(steps)+1)
	energies = append(energies, energy)

	var lastQ, lastW float64
	for i, step := range steps {
		sys, err := thermo.NewSystem(energy, step.HeatAdded, step.WorkDone)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, stepLabel(step, i), err)
		}
		du, err := thermo.DeltaU(sys)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, stepLabel(step, i), err)
		}
		energy += du
		energies = append(energies, energy)
		lastQ, lastW = step.HeatAdded, step.WorkDone
	}

	final, err := thermo.NewSystem(energy, lastQ, lastW)
	if err != nil {
		return nil, err
	}
	return &Trajectory{Energies: energies, Final: final}, nil
}

func stepLabel(s Step, i int) string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("step_%d", i)
}
