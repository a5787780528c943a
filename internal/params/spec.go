package params

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Spec is one labeled input definition with inclusive bounds.
type Spec struct {
	Name string
	Min  float64
	Max  float64
	Unit string // display only
}

// NewSpec builds a spec from its textual record fields.
func NewSpec(name, minStr, maxStr, unit string) (Spec, error) {
	name = strings.TrimSpace(name)
	lo, err := parseNumber(minStr)
	if err != nil {
		return Spec{}, &ValidationError{Name: name + " minimum", Input: minStr, Err: ErrNotNumeric}
	}
	hi, err := parseNumber(maxStr)
	if err != nil {
		return Spec{}, &ValidationError{Name: name + " maximum", Input: maxStr, Err: ErrNotNumeric}
	}
	return Spec{Name: name, Min: lo, Max: hi, Unit: strings.TrimSpace(unit)}, nil
}

// Field resolves the spec's label to a field tag.
func (s Spec) Field() Field {
	return Resolve(s.Name)
}

// Check accepts v unchanged when Min <= v <= Max.
func (s Spec) Check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Name: s.Name, Input: strconv.FormatFloat(v, 'g', -1, 64), Err: ErrNotNumeric}
	}
	if v < s.Min || v > s.Max {
		return &ValidationError{Name: s.Name, Value: v, Min: s.Min, Max: s.Max, Unit: s.Unit, Err: ErrOutOfRange}
	}
	return nil
}

// Validate parses raw and checks it against the bounds.
func (s Spec) Validate(raw string) (float64, error) {
	v, err := parseNumber(raw)
	if err != nil {
		return 0, &ValidationError{Name: s.Name, Input: raw, Min: s.Min, Max: s.Max, Unit: s.Unit, Err: ErrNotNumeric}
	}
	if err := s.Check(v); err != nil {
		return 0, err
	}
	return v, nil
}

func (s Spec) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s (%g - %g %s)", s.Name, s.Min, s.Max, s.Unit))
}

// Validate checks a raw value against textual bounds in one step.
func Validate(name, minStr, maxStr, unit, raw string) (float64, error) {
	s, err := NewSpec(name, minStr, maxStr, unit)
	if err != nil {
		return 0, err
	}
	return s.Validate(raw)
}

// FromFlat groups a flat labeled-value list (name, min, max, unit, name, ...)
// into specs.
func FromFlat(values []string) ([]Spec, error) {
	if len(values)%4 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrIncompleteRecord, len(values))
	}
	specs := make([]Spec, 0, len(values)/4)
	for i := 0; i < len(values); i += 4 {
		s, err := NewSpec(values[i], values[i+1], values[i+2], values[i+3])
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// Flatten is the inverse of FromFlat.
func Flatten(specs []Spec) []string {
	out := make([]string, 0, len(specs)*4)
	for _, s := range specs {
		out = append(out,
			s.Name,
			strconv.FormatFloat(s.Min, 'g', -1, 64),
			strconv.FormatFloat(s.Max, 'g', -1, 64),
			s.Unit,
		)
	}
	return out
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumeric
	}
	return v, nil
}
