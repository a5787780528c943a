package params

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotNumeric marks a value or bound that does not parse as a finite number.
	ErrNotNumeric = errors.New("not a number")

	// ErrOutOfRange marks a value outside the inclusive [min, max] bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrIncompleteRecord marks a flat list whose length is not a multiple of four.
	ErrIncompleteRecord = errors.New("incomplete parameter record")
)

// ValidationError reports an input rejected by a parameter spec.
type ValidationError struct {
	Name  string
	Input string // raw text, when the failure happened while parsing
	Value float64
	Min   float64
	Max   float64
	Unit  string
	Err   error // ErrNotNumeric or ErrOutOfRange
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrNotNumeric) {
		return fmt.Sprintf("%s: %q is %v", e.Name, e.Input, e.Err)
	}
	return strings.TrimSpace(fmt.Sprintf("%s: %g is %v, enter a value between %g and %g %s",
		e.Name, e.Value, e.Err, e.Min, e.Max, e.Unit))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
