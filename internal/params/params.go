package params

// KmhPerMs converts wind velocity entered in km/h to m/s.
const KmhPerMs = 3.6

// StructuralParameters holds the validated scalar inputs of one analysis.
type StructuralParameters struct {
	// Geometry (m)
	Height float64
	Width  float64
	Length float64

	// Environment
	WindVelocity float64 // m/s, converted from km/h on input
	AirDensity   float64 // kg/m³

	SafetyFactor float64

	// Material
	YieldStrength        float64 // MPa
	AverageShearStrength float64 // MPa
	ElasticModulus       float64 // GPa
	LoadCapacity         float64 // N per beam
}

// Set stores an input value in the field it belongs to. Wind velocity is
// taken in km/h and stored in m/s. Unknown fields are ignored.
func (p *StructuralParameters) Set(f Field, value float64) {
	switch f {
	case FieldHeight:
		p.Height = value
	case FieldWidth:
		p.Width = value
	case FieldLength:
		p.Length = value
	case FieldWindVelocity:
		p.WindVelocity = value / KmhPerMs
	case FieldAirDensity:
		p.AirDensity = value
	case FieldSafetyFactor:
		p.SafetyFactor = value
	case FieldYieldStrength:
		p.YieldStrength = value
	case FieldAverageShearStrength:
		p.AverageShearStrength = value
	case FieldElasticModulus:
		p.ElasticModulus = value
	case FieldLoadCapacity:
		p.LoadCapacity = value
	}
}

// Get returns the stored value of a field (wind velocity in m/s).
func (p StructuralParameters) Get(f Field) float64 {
	switch f {
	case FieldHeight:
		return p.Height
	case FieldWidth:
		return p.Width
	case FieldLength:
		return p.Length
	case FieldWindVelocity:
		return p.WindVelocity
	case FieldAirDensity:
		return p.AirDensity
	case FieldSafetyFactor:
		return p.SafetyFactor
	case FieldYieldStrength:
		return p.YieldStrength
	case FieldAverageShearStrength:
		return p.AverageShearStrength
	case FieldElasticModulus:
		return p.ElasticModulus
	case FieldLoadCapacity:
		return p.LoadCapacity
	}
	return 0
}
