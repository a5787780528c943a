package windload

import (
	"errors"
	"fmt"
)

// ErrArithmeticDomain is matched by every DomainError.
var ErrArithmeticDomain = errors.New("arithmetic domain error")

// Stage names the formula stage at which an analysis left its domain.
type Stage int

const (
	StageDragCoefficient Stage = iota + 1
	StageWindPressure
	StageWindLoad
	StageStrength
	StageFloors
	StageBeamCount
	StageBeamGeometry
	StageFlexural
	StageBuckling
	StageSafetyAdjustment
)

func (s Stage) String() string {
	switch s {
	case StageDragCoefficient:
		return "drag coefficient"
	case StageWindPressure:
		return "wind pressure"
	case StageWindLoad:
		return "wind load"
	case StageStrength:
		return "tensile/shear strength"
	case StageFloors:
		return "floor count"
	case StageBeamCount:
		return "beam count"
	case StageBeamGeometry:
		return "beam geometry"
	case StageFlexural:
		return "flexural strength"
	case StageBuckling:
		return "buckling strength"
	case StageSafetyAdjustment:
		return "safety adjustment"
	}
	return "unknown stage"
}

// DomainError reports a division by zero or a non-finite value in the
// formula pipeline.
type DomainError struct {
	Stage    Stage
	Quantity string  // offending input or intermediate
	Value    float64 // its value
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s: %s = %g: %s", ErrArithmeticDomain, e.Stage, e.Quantity, e.Value, e.Reason)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrArithmeticDomain
}

// Completed reports whether stage s finished before err stopped the
// analysis. Every stage has completed when err is nil or not a DomainError.
func Completed(err error, s Stage) bool {
	var derr *DomainError
	if !errors.As(err, &derr) {
		return true
	}
	return derr.Stage > s
}
