package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"Height,1,500,m",
		"",
		"   ",
		"no comma here",
		"Width,1,200",
		"Length,1,200,m,extra",
		"Wind Velocity,0,400,km/h\r",
		"Air Density,low,1.5,kg/m³",
		" Safety Factor , 1 , 5 , unitless ",
	}, "\n")

	specs, err := Parse(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, []params.Spec{
		{Name: "Height", Min: 1, Max: 500, Unit: "m"},
		{Name: "Wind Velocity", Min: 0, Max: 400, Unit: "km/h"},
		{Name: "Safety Factor", Min: 1, Max: 5, Unit: "unitless"},
	}, specs)
}

func TestParse_Empty(t *testing.T) {
	specs, err := Parse(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestWriteIsReadBackByParse(t *testing.T) {
	specs, err := New("", nil).Load(Steel)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Write(&buf, specs))
	assert.Contains(t, buf.String(), "Load Capacity,50000,1e+06,N\n")

	again, err := Parse(strings.NewReader(buf.String()), nil)
	require.NoError(t, err)
	assert.Equal(t, specs, again)
}

func TestDefaultDatasets(t *testing.T) {
	c := New("", nil)

	building, err := c.Load(Building)
	require.NoError(t, err)
	require.Len(t, building, 6)
	for _, s := range building {
		assert.NotEqual(t, params.FieldUnknown, s.Field(), s.Name)
		assert.LessOrEqual(t, s.Min, s.Max, s.Name)
	}

	for _, m := range Materials {
		specs, err := c.Load(m)
		require.NoError(t, err, m)
		require.Len(t, specs, 4, m)
		assert.Equal(t, params.FieldYieldStrength, specs[0].Field())
		assert.Equal(t, params.FieldLoadCapacity, specs[3].Field())
	}
}

func TestCombinedCoversEveryField(t *testing.T) {
	c := New("", nil)
	specs, err := c.Combined(Steel)
	require.NoError(t, err)

	seen := map[params.Field]bool{}
	for _, s := range specs {
		seen[s.Field()] = true
	}
	for _, f := range params.Fields {
		assert.True(t, seen[f], f.String())
	}
}

func TestCatalogFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wood.csv"),
		[]byte("Yield Strength,30,40,MPa\nLoad Capacity,100,200,N\n"), 0o644))

	c := New(dir, nil)
	specs, err := c.Load(Wood)
	require.NoError(t, err)
	assert.Equal(t, []params.Spec{
		{Name: "Yield Strength", Min: 30, Max: 40, Unit: "MPa"},
		{Name: "Load Capacity", Min: 100, Max: 200, Unit: "N"},
	}, specs)

	_, err = c.Load(Steel)
	assert.Error(t, err)
}

func TestParseDataset(t *testing.T) {
	tests := []struct {
		in   string
		want Dataset
	}{
		{"W", Wood},
		{"c", Concrete},
		{"Br", Brick},
		{"st", Stone},
		{"EL", Steel},
		{"bu", Building},
		{"steel", Steel},
		{"Concrete", Concrete},
	}
	for _, tt := range tests {
		got, err := ParseDataset(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDataset("glass")
	assert.ErrorIs(t, err, ErrUnknownDataset)

	_, err = ParseMaterial("building")
	assert.ErrorIs(t, err, ErrUnknownDataset)

	m, err := ParseMaterial("el")
	require.NoError(t, err)
	assert.Equal(t, Steel, m)
	assert.Equal(t, "EL", m.Code())
	assert.Equal(t, "Steel", m.Title())
}
