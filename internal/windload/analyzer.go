package windload

import (
	"math"

	"github.com/alexiusacademia/gowind/internal/params"
)

const (
	// Drag coefficient shape factors for the height/width and height/length ratios.
	Alpha = 1.2
	Beta  = 0.6

	FloorLoad                   = 10.0 // N/m² per floor
	FloorHeight                 = 4.0  // m
	ColumnEffectiveLengthFactor = 1.0
)

// AnalysisResult holds every quantity derived from one parameter set.
type AnalysisResult struct {
	// Wind
	DragCoefficient    float64
	WindPressure       float64 // N/m²
	CrossSectionalArea float64 // m²
	WindLoad           float64 // N

	// Nominal strengths (N)
	TensileStrength         float64
	ShearStrength           float64
	MaximumFlexuralStrength float64
	BucklingStrength        float64

	// Floors and beams
	Floors          int
	FloorArea       float64 // m²
	TotalLoad       float64 // N
	BeamCount       int
	BeamHeight      float64 // m
	BeamWidth       float64 // m
	MomentOfInertia float64 // m⁴

	// Safety-adjusted strengths (N)
	SafetyTensileStrength         float64
	SafetyShearStrength           float64
	SafetyMaximumFlexuralStrength float64
	SafetyBucklingStrength        float64

	// Checks holds one verdict per mode in Modes order. It is empty when the
	// analysis stopped on a DomainError.
	Checks []Check
}

// Analyze runs the wind-load pipeline over p and classifies every failure
// mode.
//
// When a stage divides by zero or produces a non-finite value, Analyze
// returns a *DomainError together with the partial result: every quantity
// computed before the failing stage is filled in and Checks is empty.
func Analyze(p params.StructuralParameters) (*AnalysisResult, error) {
	r := &AnalysisResult{}

	if p.Width == 0 {
		return r, &DomainError{Stage: StageDragCoefficient, Quantity: "width", Value: p.Width, Reason: "division by zero"}
	}
	if p.Length == 0 {
		return r, &DomainError{Stage: StageDragCoefficient, Quantity: "length", Value: p.Length, Reason: "division by zero"}
	}
	r.DragCoefficient = Alpha*(p.Height/p.Width) + Beta*(p.Height/p.Length)
	if err := finite(StageDragCoefficient, "drag coefficient", r.DragCoefficient); err != nil {
		return r, err
	}

	r.WindPressure = 0.5 * p.AirDensity * r.DragCoefficient * math.Pow(p.WindVelocity, 2)
	if err := finite(StageWindPressure, "wind pressure", r.WindPressure); err != nil {
		return r, err
	}

	r.CrossSectionalArea = p.Height * p.Width
	r.WindLoad = r.WindPressure * r.CrossSectionalArea
	if err := finite(StageWindLoad, "wind load", r.WindLoad); err != nil {
		return r, err
	}

	r.TensileStrength = p.YieldStrength * r.CrossSectionalArea
	r.ShearStrength = p.AverageShearStrength * r.CrossSectionalArea
	if err := finite(StageStrength, "tensile strength", r.TensileStrength); err != nil {
		return r, err
	}
	if err := finite(StageStrength, "shear strength", r.ShearStrength); err != nil {
		return r, err
	}

	floors, err := count(StageFloors, "floor count", p.Height/FloorHeight)
	if err != nil {
		return r, err
	}
	r.Floors = floors
	r.FloorArea = p.Length * p.Width
	r.TotalLoad = float64(r.Floors) * r.FloorArea * FloorLoad

	if p.LoadCapacity == 0 {
		return r, &DomainError{Stage: StageBeamCount, Quantity: "load capacity", Value: p.LoadCapacity, Reason: "division by zero"}
	}
	beams := r.TotalLoad / p.LoadCapacity
	if err := finite(StageBeamCount, "beam count", beams); err != nil {
		return r, err
	}
	beamCount, err := count(StageBeamCount, "beam count", beams)
	if err != nil {
		return r, err
	}
	r.BeamCount = beamCount

	if r.BeamCount <= 0 {
		return r, &DomainError{Stage: StageBeamGeometry, Quantity: "beam count", Value: float64(r.BeamCount),
			Reason: "total load is below one beam's load capacity, no beams to size"}
	}
	r.BeamHeight = p.Height / float64(r.BeamCount)
	r.BeamWidth = r.BeamHeight / 2
	r.MomentOfInertia = r.BeamWidth * math.Pow(r.BeamHeight, 3) / 12

	if r.BeamWidth == 0 {
		return r, &DomainError{Stage: StageFlexural, Quantity: "beam width", Value: r.BeamWidth, Reason: "division by zero"}
	}
	r.MaximumFlexuralStrength = p.YieldStrength * r.MomentOfInertia / r.BeamWidth
	if err := finite(StageFlexural, "maximum flexural strength", r.MaximumFlexuralStrength); err != nil {
		return r, err
	}

	effectiveLength := ColumnEffectiveLengthFactor * r.BeamHeight
	if effectiveLength == 0 {
		return r, &DomainError{Stage: StageBuckling, Quantity: "beam height", Value: r.BeamHeight, Reason: "division by zero"}
	}
	r.BucklingStrength = math.Pi * math.Pi * p.ElasticModulus * r.MomentOfInertia / math.Pow(effectiveLength, 2)
	if err := finite(StageBuckling, "buckling strength", r.BucklingStrength); err != nil {
		return r, err
	}

	if p.SafetyFactor == 0 {
		return r, &DomainError{Stage: StageSafetyAdjustment, Quantity: "safety factor", Value: p.SafetyFactor, Reason: "division by zero"}
	}
	r.SafetyTensileStrength = r.TensileStrength / p.SafetyFactor
	r.SafetyShearStrength = r.ShearStrength / p.SafetyFactor
	r.SafetyMaximumFlexuralStrength = r.MaximumFlexuralStrength / p.SafetyFactor
	r.SafetyBucklingStrength = r.BucklingStrength / p.SafetyFactor
	for _, v := range []float64{
		r.SafetyTensileStrength,
		r.SafetyShearStrength,
		r.SafetyMaximumFlexuralStrength,
		r.SafetyBucklingStrength,
	} {
		if err := finite(StageSafetyAdjustment, "safety-adjusted strength", v); err != nil {
			return r, err
		}
	}

	r.Checks = []Check{
		newCheck(ModeTensile, r.WindLoad, r.TensileStrength, r.SafetyTensileStrength),
		newCheck(ModeShear, r.WindLoad, r.ShearStrength, r.SafetyShearStrength),
		newCheck(ModeFlexural, r.WindLoad, r.MaximumFlexuralStrength, r.SafetyMaximumFlexuralStrength),
		newCheck(ModeBuckling, r.WindLoad, r.BucklingStrength, r.SafetyBucklingStrength),
	}

	return r, nil
}

func newCheck(m Mode, windLoad, nominal, adjusted float64) Check {
	return Check{Mode: m, Nominal: nominal, Adjusted: adjusted, Verdict: Classify(windLoad, nominal, adjusted)}
}

func finite(stage Stage, quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Stage: stage, Quantity: quantity, Value: v, Reason: "non-finite result"}
	}
	return nil
}

// count truncates v toward zero. Values outside the int range are a
// DomainError at stage.
func count(stage Stage, quantity string, v float64) (int, error) {
	if v >= float64(math.MaxInt) || v <= float64(math.MinInt) {
		return 0, &DomainError{Stage: stage, Quantity: quantity, Value: v, Reason: "exceeds integer range"}
	}
	return int(v), nil
}

// Check returns the check for mode m.
func (r *AnalysisResult) Check(m Mode) (Check, bool) {
	for _, c := range r.Checks {
		if c.Mode == m {
			return c, true
		}
	}
	return Check{}, false
}

// Governing returns the most severe check. Ties go to the mode with the
// highest utilization.
func (r *AnalysisResult) Governing() (Check, bool) {
	if len(r.Checks) == 0 {
		return Check{}, false
	}
	gov := r.Checks[0]
	for _, c := range r.Checks[1:] {
		if c.Verdict > gov.Verdict ||
			(c.Verdict == gov.Verdict && c.Utilization(r.WindLoad) > gov.Utilization(r.WindLoad)) {
			gov = c
		}
	}
	return gov, true
}

// Survives reports whether no mode fails outright.
func (r *AnalysisResult) Survives() bool {
	for _, c := range r.Checks {
		if c.Verdict == VerdictFailure {
			return false
		}
	}
	return len(r.Checks) > 0
}

// Safe reports whether every mode is safe.
func (r *AnalysisResult) Safe() bool {
	for _, c := range r.Checks {
		if c.Verdict != VerdictSafe {
			return false
		}
	}
	return len(r.Checks) > 0
}
