package thermo

import "fmt"

// First Law of Thermodynamics: ΔU = Q - W, with W the work done BY the
// system. The three functions below are the three algebraic rearrangements
// of that single linear equation. All quantities are in Joules.

// DeltaU returns the change in internal energy for a system: Q - W.
func DeltaU(s *System) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("input must be a thermodynamic system: %w", ErrNotNumeric)
	}
	return s.heatAdded - s.workDone, nil
}

// HeatAdded returns the heat added to a system given the change in
// internal energy and the work done: Q = ΔU + W.
func HeatAdded(deltaU, workDone float64) (float64, error) {
	if err := checkFinite("delta_u", deltaU); err != nil {
		return 0, err
	}
	if err := checkFinite(KeyWorkDone, workDone); err != nil {
		return 0, err
	}
	return deltaU + workDone, nil
}

// WorkDone returns the work done by a system given the change in internal
// energy and the heat added: W = Q - ΔU.
func WorkDone(deltaU, heatAdded float64) (float64, error) {
	if err := checkFinite("delta_u", deltaU); err != nil {
		return 0, err
	}
	if err := checkFinite(KeyHeatAdded, heatAdded); err != nil {
		return 0, err
	}
	return heatAdded - deltaU, nil
}
