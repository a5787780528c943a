package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/alexiusacademia/gowind/internal/windload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzed(t *testing.T) *windload.AnalysisResult {
	t.Helper()
	p := params.StructuralParameters{
		Height:               12,
		Width:                6,
		Length:               10,
		WindVelocity:         20,
		AirDensity:           1.225,
		SafetyFactor:         1.5,
		YieldStrength:        250,
		AverageShearStrength: 150,
		ElasticModulus:       200,
		LoadCapacity:         500,
	}
	r, err := windload.Analyze(p)
	require.NoError(t, err)
	return r
}

func TestDrawASCIICapacityChart(t *testing.T) {
	r := analyzed(t)
	out := DrawASCIICapacityChart(r)

	for _, m := range windload.Modes {
		assert.Contains(t, out, m.String())
	}
	assert.Contains(t, out, "FAILURE")
	assert.Contains(t, out, "Governing mode:")
	assert.Equal(t, len(r.Checks)*3, strings.Count(out, "│")/2)
}

func TestDrawASCIICapacityChart_NoChecks(t *testing.T) {
	assert.Contains(t, DrawASCIICapacityChart(nil), "no capacity checks")
	assert.Contains(t, DrawASCIICapacityChart(&windload.AnalysisResult{}), "no capacity checks")
}

func TestBarIsClamped(t *testing.T) {
	assert.Equal(t, strings.Repeat("#", barWidth), bar(10, 1, "#"))
	assert.Equal(t, strings.Repeat(" ", barWidth), bar(5, 0, "#"))
	assert.Equal(t, strings.Repeat("#", barWidth/2)+strings.Repeat(" ", barWidth-barWidth/2), bar(1, 2, "#"))
}

func TestExportCapacityChart(t *testing.T) {
	r := analyzed(t)
	dir := t.TempDir()

	name, err := ExportCapacityChart(r, filepath.Join(dir, "charts", "capacity.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "charts", "capacity.svg"), name)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestExportCapacityChart_DefaultsToPNG(t *testing.T) {
	r := analyzed(t)
	base := filepath.Join(t.TempDir(), "capacity")

	name, err := ExportCapacityChart(r, base)
	require.NoError(t, err)
	assert.Equal(t, base+".png", name)

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCapacityChart_NoChecks(t *testing.T) {
	_, err := ExportCapacityChart(&windload.AnalysisResult{}, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}
