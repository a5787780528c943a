package windload

// Mode is a structural failure mode checked against the wind load.
type Mode int

const (
	ModeTensile Mode = iota
	ModeShear
	ModeFlexural
	ModeBuckling
)

// Modes lists the failure modes in reporting order.
var Modes = []Mode{ModeTensile, ModeShear, ModeFlexural, ModeBuckling}

func (m Mode) String() string {
	switch m {
	case ModeTensile:
		return "Tensile"
	case ModeShear:
		return "Shear"
	case ModeFlexural:
		return "Flexural"
	case ModeBuckling:
		return "Buckling"
	}
	return "Unknown"
}

// Verdict is the outcome of one mode check, ordered by severity.
type Verdict int

const (
	// VerdictSafe: the wind load is below the safety-adjusted strength.
	VerdictSafe Verdict = iota
	// VerdictSurvivesUnsafe: below nominal strength but not below the adjusted one.
	VerdictSurvivesUnsafe
	// VerdictFailure: the wind load reaches the nominal strength.
	VerdictFailure
)

func (v Verdict) String() string {
	switch v {
	case VerdictSafe:
		return "SAFE"
	case VerdictSurvivesUnsafe:
		return "SURVIVES_UNSAFE"
	case VerdictFailure:
		return "FAILURE"
	}
	return "UNKNOWN"
}

// Describe returns a one-line explanation of the verdict for mode.
func (v Verdict) Describe(m Mode) string {
	strength := m.strengthName()
	switch v {
	case VerdictFailure:
		return "Structural failure will occur due to a lack of " + strength + "."
	case VerdictSurvivesUnsafe:
		return "The structure would survive, but is not deemed safe due to a lack of " + strength + "."
	default:
		return "The structure is deemed safe, as the wind load is less than the " + strength + "."
	}
}

func (m Mode) strengthName() string {
	switch m {
	case ModeTensile:
		return "tensile strength"
	case ModeShear:
		return "shear strength"
	case ModeFlexural:
		return "maximum flexural strength"
	case ModeBuckling:
		return "buckling strength"
	}
	return "strength"
}

// Classify compares a wind load with the nominal and safety-adjusted
// strength of one mode.
func Classify(windLoad, nominal, adjusted float64) Verdict {
	switch {
	case windLoad >= nominal && windLoad >= adjusted:
		return VerdictFailure
	case windLoad < nominal && windLoad >= adjusted:
		return VerdictSurvivesUnsafe
	default:
		return VerdictSafe
	}
}

// Check is the verdict of one failure mode.
type Check struct {
	Mode     Mode
	Nominal  float64 // N
	Adjusted float64 // N, nominal / safety factor
	Verdict  Verdict
}

// Utilization is wind load over adjusted strength; at or above 1 the mode is not safe.
func (c Check) Utilization(windLoad float64) float64 {
	if c.Adjusted == 0 {
		return 0
	}
	return windLoad / c.Adjusted
}
