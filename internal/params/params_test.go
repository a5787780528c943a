package params

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		label string
		want  Field
	}{
		{"Height", FieldHeight},
		{"  Width ", FieldWidth},
		{"Length", FieldLength},
		{"Wind Velocity", FieldWindVelocity},
		{"Air Density", FieldAirDensity},
		{"Safety Factor", FieldSafetyFactor},
		{"Yield Strength", FieldYieldStrength},
		{"Average Shear Strength", FieldAverageShearStrength},
		{"Elastic Modulus", FieldElasticModulus},
		{"Load Capacity", FieldLoadCapacity},
		{"Yield Strength (Steel)", FieldYieldStrength},
		{"Height of tower", FieldHeight},
		{"Shear Strength", FieldUnknown},
		{"H", FieldUnknown},
		{"", FieldUnknown},
		{"height", FieldUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.label))
		})
	}
}

func TestFieldLabelsAreNotPrefixesOfEachOther(t *testing.T) {
	for _, a := range Fields {
		for _, b := range Fields {
			if a == b {
				continue
			}
			assert.False(t, strings.HasPrefix(b.Label(), a.Label()), "%s starts with %s", b, a)
			assert.Equal(t, b, Resolve(b.Label()))
		}
	}
}

func TestSetConvertsWindVelocity(t *testing.T) {
	var p StructuralParameters
	p.Set(FieldWindVelocity, 36.0)
	assert.InDelta(t, 10.0, p.WindVelocity, 1e-9)
	assert.InDelta(t, 10.0, p.Get(FieldWindVelocity), 1e-9)
}

func TestSetGetRoundTrip(t *testing.T) {
	var p StructuralParameters
	for i, f := range Fields {
		if f == FieldWindVelocity {
			continue
		}
		p.Set(f, float64(i+1))
	}
	for i, f := range Fields {
		if f == FieldWindVelocity {
			continue
		}
		assert.Equal(t, float64(i+1), p.Get(f), f.String())
	}
}

func TestSpecValidate(t *testing.T) {
	spec := Spec{Name: "Height", Min: 1, Max: 500, Unit: "m"}

	tests := []struct {
		raw     string
		want    float64
		wantErr error
	}{
		{"1", 1, nil},
		{"500", 500, nil},
		{"250.5", 250.5, nil},
		{" 12 ", 12, nil},
		{"0.999", 0, ErrOutOfRange},
		{"500.0001", 0, ErrOutOfRange},
		{"-3", 0, ErrOutOfRange},
		{"abc", 0, ErrNotNumeric},
		{"", 0, ErrNotNumeric},
		{"NaN", 0, ErrNotNumeric},
		{"Inf", 0, ErrNotNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := spec.Validate(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.Equal(t, "Height", verr.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateBoundsInclusive(t *testing.T) {
	triples := []struct{ min, max, v float64 }{
		{0, 10, 0},
		{0, 10, 10},
		{-5, 5, 0},
		{1.225, 1.225, 1.225},
		{0.5, 1.5, 1},
	}
	for _, tr := range triples {
		spec := Spec{Name: "x", Min: tr.min, Max: tr.max}
		assert.NoError(t, spec.Check(tr.v), "%v in [%v,%v]", tr.v, tr.min, tr.max)
	}

	outside := []struct{ min, max, v float64 }{
		{0, 10, -0.0001},
		{0, 10, 10.0001},
		{1.225, 1.225, 1.2},
	}
	for _, tr := range outside {
		spec := Spec{Name: "x", Min: tr.min, Max: tr.max}
		assert.ErrorIs(t, spec.Check(tr.v), ErrOutOfRange, "%v outside [%v,%v]", tr.v, tr.min, tr.max)
	}
}

func TestValidateTextualBounds(t *testing.T) {
	v, err := Validate("Air Density", "0.9", "1.5", "kg/m³", "1.225")
	require.NoError(t, err)
	assert.Equal(t, 1.225, v)

	_, err = Validate("Air Density", "low", "1.5", "kg/m³", "1.225")
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = Validate("Air Density", "0.9", "1.5", "kg/m³", "2")
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "between 0.9 and 1.5 kg/m³")
}

func TestFromFlat(t *testing.T) {
	specs, err := FromFlat([]string{
		"Height", "1", "500", "m",
		"Wind Velocity", "0", "400", "km/h",
	})
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, Spec{Name: "Height", Min: 1, Max: 500, Unit: "m"}, specs[0])
	assert.Equal(t, FieldWindVelocity, specs[1].Field())

	assert.Equal(t, []string{
		"Height", "1", "500", "m",
		"Wind Velocity", "0", "400", "km/h",
	}, Flatten(specs))

	_, err = FromFlat([]string{"Height", "1", "500"})
	assert.ErrorIs(t, err, ErrIncompleteRecord)

	_, err = FromFlat([]string{"Height", "one", "500", "m"})
	assert.ErrorIs(t, err, ErrNotNumeric)
}
