// Package thermo models simple lumped thermodynamic systems under the
// First Law of Thermodynamics.
//
// The package provides:
//
//   - [System]: a validated holder for internal energy, heat added, and
//     work done, all in Joules
//   - [DeltaU], [HeatAdded], [WorkDone]: the three rearrangements of
//     ΔU = Q - W (W is work done BY the system)
//   - the error kinds shared with the statefile package
//
// # Example
//
//	sys, _ := thermo.NewSystem(0, 100, 50)
//	du, _ := thermo.DeltaU(sys) // 50
//
// Systems are plain values with no shared state; nothing in this package
// is safe for concurrent mutation of a single System, and nothing needs
// to be.
package thermo
