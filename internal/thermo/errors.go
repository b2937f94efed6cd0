package thermo

import (
	"errors"
	"fmt"
)

// Domain errors for system construction, calculation, and persistence.
// Callers match on these with errors.Is; the wrapper types below carry
// the field name or parse position alongside the kind.
var (
	// ErrNotNumeric indicates a value that is not a usable finite number
	// (NaN, ±Inf, a non-numeric JSON value, or a nil system).
	ErrNotNumeric = errors.New("thermo: value is not a finite number")

	// ErrMissingField indicates serialized input lacking a required field.
	ErrMissingField = errors.New("thermo: required field missing")

	// ErrNotFound indicates a state file path that does not exist.
	ErrNotFound = errors.New("thermo: state file not found")

	// ErrParse indicates state file content that is not valid JSON.
	ErrParse = errors.New("thermo: state file is not valid JSON")

	// ErrIO indicates a read or write failure other than absence or parse.
	ErrIO = errors.New("thermo: state file read/write failed")
)

// FieldError reports a named field or parameter whose value failed the
// numeric contract. It is ErrNotNumeric under errors.Is.
type FieldError struct {
	Field string
	Value any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s must be a finite number, got %T value %v", e.Field, e.Value, e.Value)
}

func (e *FieldError) Unwrap() error { return ErrNotNumeric }

// ParseError reports a JSON syntax fault in a state file, carrying the
// raw document and the byte offset of the fault. It is ErrParse under
// errors.Is.
type ParseError struct {
	Path   string
	Doc    string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s at byte %d: %v", e.Path, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
