package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const projectYAML = `
scenarios:
  - name: Reference building
    material: steel
    values:
      Height: 12
      Width: 6
      Length: 10
      Wind Velocity: 72
      Air Density: 1.225
      Safety Factor: 1.5
  - values:
      Height: 40
`

func TestParseYAML(t *testing.T) {
	scs, err := ParseYAML([]byte(projectYAML))
	require.NoError(t, err)
	require.Len(t, scs, 2)

	assert.Equal(t, "Reference building", scs[0].Name)
	assert.Equal(t, "steel", scs[0].Material)
	assert.Equal(t, 72.0, scs[0].Values["Wind Velocity"])
	assert.Len(t, scs[0].Values, 6)

	assert.Equal(t, "scenario 2", scs[1].Name)
	assert.Equal(t, 40.0, scs[1].Values["Height"])
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("scenarios: [name: {"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario YAML")
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yml")
	require.NoError(t, os.WriteFile(path, []byte(projectYAML), 0o644))

	scs, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, scs, 2)

	_, err = Load(filepath.Join(dir, "project.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestApply(t *testing.T) {
	store := params.NewStore([]params.Spec{
		{Name: "Height", Min: 1, Max: 500, Unit: "m"},
		{Name: "Wind Velocity", Min: 0, Max: 400, Unit: "km/h"},
	}, nil)

	sc := Scenario{Name: "ok", Values: map[string]float64{
		"Height":         12,
		"Wind Velocity":  36,
		"Yield Strength": 250, // no spec, assigned unchecked
		"Roof Pitch":     30,  // unknown, ignored
	}}
	require.NoError(t, sc.Apply(store))
	assert.Equal(t, 12.0, store.Params().Height)
	assert.InDelta(t, 10.0, store.Params().WindVelocity, 1e-9)
	assert.Equal(t, 250.0, store.Params().YieldStrength)

	bad := Scenario{Name: "too tall", Values: map[string]float64{"Height": 900}}
	err := bad.Apply(store)
	assert.ErrorIs(t, err, params.ErrOutOfRange)
	assert.Contains(t, err.Error(), "too tall")
	assert.Equal(t, 12.0, store.Params().Height)
}

func TestApply_UnknownLabelIgnoresUnknownSpec(t *testing.T) {
	store := params.NewStore([]params.Spec{
		{Name: "Roof Pitch", Min: 0, Max: 45, Unit: "deg"},
		{Name: "Height", Min: 1, Max: 500, Unit: "m"},
	}, nil)

	sc := Scenario{Name: "extras", Values: map[string]float64{
		"Gutter Size": 100,
		"Height":      12,
	}}
	require.NoError(t, sc.Apply(store))
	assert.Equal(t, 12.0, store.Params().Height)
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	path := filepath.Join(t.TempDir(), "scenarios.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Name", "Material", "Height", "Width", "Wind Velocity"},
		{"Tower", "EL", 120, 20, 90},
		{},
		{"", "wood", 8, "", 36.5},
	})

	scs, err := LoadWorkbook(path)
	require.NoError(t, err)
	require.Len(t, scs, 2)

	assert.Equal(t, "Tower", scs[0].Name)
	assert.Equal(t, "EL", scs[0].Material)
	assert.Equal(t, map[string]float64{"Height": 120, "Width": 20, "Wind Velocity": 90}, scs[0].Values)

	assert.Equal(t, "row 4", scs[1].Name)
	assert.Equal(t, "wood", scs[1].Material)
	assert.Equal(t, map[string]float64{"Height": 8, "Wind Velocity": 36.5}, scs[1].Values)
}

func TestLoadWorkbook_Errors(t *testing.T) {
	headerOnly := writeWorkbook(t, [][]interface{}{{"Name", "Height"}})
	_, err := LoadWorkbook(headerOnly)
	assert.ErrorIs(t, err, ErrEmptySheet)

	badCell := writeWorkbook(t, [][]interface{}{
		{"Name", "Height"},
		{"Shed", "tall"},
	})
	_, err = LoadWorkbook(badCell)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2, Height")

	_, err = LoadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadWorkbook(strings.NewReader("Name,Height\nShed,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening workbook")
}
