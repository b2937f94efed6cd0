package thermo

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Serialization keys, in the fixed order they are validated.
const (
	KeyInternalEnergy = "internal_energy"
	KeyHeatAdded      = "heat_added"
	KeyWorkDone       = "work_done"
)

var requiredKeys = []string{KeyInternalEnergy, KeyHeatAdded, KeyWorkDone}

// System represents a single, lumped thermodynamic system at an instant.
// All quantities are scalars in Joules. The sign convention throughout is
// ΔU = Q - W, where W is work done BY the system: heat added is positive
// flowing into the system, work done is positive performed by the system
// on its surroundings.
//
// The zero value is a valid all-zero system. Internal energy is an
// independent, directly-set quantity; it is never derived from the other
// two fields.
type System struct {
	internalEnergy float64
	heatAdded      float64
	workDone       float64
}

// NewSystem constructs a system from the three quantities in Joules.
// Each value must be finite; a NaN or infinite argument fails with a
// FieldError naming the field and nothing is constructed.
func NewSystem(internalEnergy, heatAdded, workDone float64) (*System, error) {
	if err := checkFinite(KeyInternalEnergy, internalEnergy); err != nil {
		return nil, err
	}
	if err := checkFinite(KeyHeatAdded, heatAdded); err != nil {
		return nil, err
	}
	if err := checkFinite(KeyWorkDone, workDone); err != nil {
		return nil, err
	}
	return &System{
		internalEnergy: internalEnergy,
		heatAdded:      heatAdded,
		workDone:       workDone,
	}, nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FieldError{Field: field, Value: v}
	}
	return nil
}

// InternalEnergy returns the internal energy of the system in Joules.
func (s *System) InternalEnergy() float64 { return s.internalEnergy }

// HeatAdded returns the heat added to the system in Joules.
func (s *System) HeatAdded() float64 { return s.heatAdded }

// WorkDone returns the work done by the system in Joules.
func (s *System) WorkDone() float64 { return s.workDone }

// SetInternalEnergy replaces the internal energy. The field is left
// untouched if v is not finite.
func (s *System) SetInternalEnergy(v float64) error {
	if err := checkFinite(KeyInternalEnergy, v); err != nil {
		return err
	}
	s.internalEnergy = v
	return nil
}

// SetHeatAdded replaces the heat added. The field is left untouched if v
// is not finite.
func (s *System) SetHeatAdded(v float64) error {
	if err := checkFinite(KeyHeatAdded, v); err != nil {
		return err
	}
	s.heatAdded = v
	return nil
}

// SetWorkDone replaces the work done. The field is left untouched if v is
// not finite.
func (s *System) SetWorkDone(v float64) error {
	if err := checkFinite(KeyWorkDone, v); err != nil {
		return err
	}
	s.workDone = v
	return nil
}

// ToMap returns the serialization intermediate: exactly the three keys
// with the current field values.
func (s *System) ToMap() map[string]float64 {
	return map[string]float64{
		KeyInternalEnergy: s.internalEnergy,
		KeyHeatAdded:      s.heatAdded,
		KeyWorkDone:       s.workDone,
	}
}

// FromMap builds a system from decoded JSON data. The three required keys
// are checked in the fixed order internal_energy, heat_added, work_done:
// the first absent key fails with ErrMissingField naming it, and a present
// but non-numeric value fails with a FieldError naming it. Extra keys are
// ignored. The system is constructed only after all three validate.
func FromMap(data map[string]any) (*System, error) {
	values := make(map[string]float64, len(requiredKeys))
	for _, key := range requiredKeys {
		raw, ok := data[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, key)
		}
		v, err := numericValue(key, raw)
		if err != nil {
			return nil, err
		}
		values[key] = v
	}
	return NewSystem(values[KeyInternalEnergy], values[KeyHeatAdded], values[KeyWorkDone])
}

// numericValue coerces a decoded JSON value to float64. encoding/json
// yields float64 or json.Number for numbers; Go integer types are accepted
// for maps built in code.
func numericValue(key string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &FieldError{Field: key, Value: raw}
		}
		return f, nil
	default:
		return 0, &FieldError{Field: key, Value: raw}
	}
}

// Equal reports whether other holds exactly the same three quantities.
// A nil comparand is never equal and never panics.
func (s *System) Equal(other *System) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.internalEnergy == other.internalEnergy &&
		s.heatAdded == other.heatAdded &&
		s.workDone == other.workDone
}

// String renders the system in its canonical debug form, with integral
// values keeping a trailing ".0".
func (s *System) String() string {
	return fmt.Sprintf("ThermodynamicSystem(%s=%s, %s=%s, %s=%s)",
		KeyInternalEnergy, FormatJoules(s.internalEnergy),
		KeyHeatAdded, FormatJoules(s.heatAdded),
		KeyWorkDone, FormatJoules(s.workDone))
}

// FormatJoules renders an energy value in its natural float text form:
// the shortest exact representation, with ".0" appended to integral values
// so 20 renders as "20.0".
func FormatJoules(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
