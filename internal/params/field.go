package params

import "strings"

// Field identifies one of the ten structural inputs.
type Field int

const (
	FieldUnknown Field = iota
	FieldHeight
	FieldWidth
	FieldLength
	FieldWindVelocity
	FieldAirDensity
	FieldSafetyFactor
	FieldYieldStrength
	FieldAverageShearStrength
	FieldElasticModulus
	FieldLoadCapacity
)

// Fields lists every known field in canonical (report) order.
var Fields = []Field{
	FieldHeight,
	FieldWidth,
	FieldLength,
	FieldWindVelocity,
	FieldAirDensity,
	FieldSafetyFactor,
	FieldYieldStrength,
	FieldAverageShearStrength,
	FieldElasticModulus,
	FieldLoadCapacity,
}

type fieldInfo struct {
	label string
	unit  string // unit of the stored value
}

var fieldTable = map[Field]fieldInfo{
	FieldHeight:               {"Height", "m"},
	FieldWidth:                {"Width", "m"},
	FieldLength:               {"Length", "m"},
	FieldWindVelocity:         {"Wind Velocity", "m/s"},
	FieldAirDensity:           {"Air Density", "kg/m³"},
	FieldSafetyFactor:         {"Safety Factor", ""},
	FieldYieldStrength:        {"Yield Strength", "MPa"},
	FieldAverageShearStrength: {"Average Shear Strength", "MPa"},
	FieldElasticModulus:       {"Elastic Modulus", "GPa"},
	FieldLoadCapacity:         {"Load Capacity", "N"},
}

var labelIndex = func() map[string]Field {
	m := make(map[string]Field, len(fieldTable))
	for f, info := range fieldTable {
		m[info.label] = f
	}
	return m
}()

// Label returns the canonical label, e.g. "Wind Velocity".
func (f Field) Label() string {
	return fieldTable[f].label
}

// Unit returns the unit of the stored value. Wind velocity is stored in m/s
// even though it is entered in km/h.
func (f Field) Unit() string {
	return fieldTable[f].unit
}

func (f Field) String() string {
	if l := f.Label(); l != "" {
		return l
	}
	return "Unknown"
}

// Resolve maps an input label to its field. An exact match against the
// canonical labels wins; otherwise the first canonical label the input
// starts with is used, so labels like "Height (Tower)" still resolve.
// No canonical label is a prefix of another.
func Resolve(label string) Field {
	label = strings.TrimSpace(label)
	if f, ok := labelIndex[label]; ok {
		return f
	}
	for _, f := range Fields {
		if strings.HasPrefix(label, f.Label()) {
			return f
		}
	}
	return FieldUnknown
}
