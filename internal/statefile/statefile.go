// Package statefile reads and writes thermodynamic system state as
// indented JSON, one system per file.
package statefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"thermolab/internal/thermo"
)

// document fixes the on-disk key order.
type document struct {
	InternalEnergy float64 `json:"internal_energy"`
	HeatAdded      float64 `json:"heat_added"`
	WorkDone       float64 `json:"work_done"`
}

// Save writes sys to path as UTF-8 JSON with four-space indentation,
// overwriting any existing file.
func Save(sys *thermo.System, path string) error {
	if sys == nil {
		return fmt.Errorf("input must be a thermodynamic system: %w", thermo.ErrNotNumeric)
	}

	m := sys.ToMap()
	doc := document{
		InternalEnergy: m[thermo.KeyInternalEnergy],
		HeatAdded:      m[thermo.KeyHeatAdded],
		WorkDone:       m[thermo.KeyWorkDone],
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("save state to %s: %w: %w", path, thermo.ErrIO, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save state to %s: %w: %w", path, thermo.ErrIO, err)
	}
	return nil
}

// Load reads the system state stored at path. An absent file is
// thermo.ErrNotFound, malformed JSON is a thermo.ParseError carrying the
// byte offset, and a structurally wrong document propagates the
// thermo.ErrMissingField / thermo.ErrNotNumeric failure from FromMap,
// all wrapped with the path.
func Load(path string) (*thermo.System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s: %w", path, thermo.ErrNotFound)
		}
		return nil, fmt.Errorf("load state from %s: %w: %w", path, thermo.ErrIO, err)
	}

	// UseNumber keeps JSON numbers distinct from strings so FromMap sees
	// the real value types.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, parseError(path, data, err)
	}
	// The whole file is the document: anything after the first value is
	// a syntax fault, same as a truncated or unbalanced one.
	if dec.More() {
		return nil, &thermo.ParseError{
			Path:   path,
			Doc:    string(data),
			Offset: dec.InputOffset(),
			Err:    errors.New("extra data after top-level value"),
		}
	}

	sys, err := thermo.FromMap(raw)
	if err != nil {
		return nil, fmt.Errorf("load state from %s: %w", path, err)
	}
	return sys, nil
}

func parseError(path string, doc []byte, err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &thermo.ParseError{Path: path, Doc: string(doc), Offset: syn.Offset, Err: err}
	}

	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		// Top-level non-object (e.g. a bare array) decoded into the map.
		return &thermo.ParseError{Path: path, Doc: string(doc), Offset: typ.Offset, Err: err}
	}

	return &thermo.ParseError{Path: path, Doc: string(doc), Err: err}
}
