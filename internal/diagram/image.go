package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gowind/internal/windload"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportCapacityChart writes a grouped bar chart of nominal and
// safety-adjusted strength per failure mode, with the wind load drawn as a
// horizontal line. The format follows the file extension (.png, .svg, .pdf);
// any other name gets ".png" appended. It returns the path written.
func ExportCapacityChart(r *windload.AnalysisResult, filename string) (string, error) {
	if r == nil || len(r.Checks) == 0 {
		return "", fmt.Errorf("no capacity checks to plot")
	}

	p := plot.New()
	p.Title.Text = "Capacity vs Wind Load"
	p.Y.Label.Text = "Force (N)"
	p.Legend.Top = true

	nominal := make(plotter.Values, len(r.Checks))
	adjusted := make(plotter.Values, len(r.Checks))
	names := make([]string, len(r.Checks))
	for i, c := range r.Checks {
		nominal[i] = c.Nominal
		adjusted[i] = c.Adjusted
		names[i] = c.Mode.String()
	}

	w := vg.Points(22)

	nominalBars, err := plotter.NewBarChart(nominal, w)
	if err != nil {
		return "", err
	}
	nominalBars.Color = color.RGBA{R: 70, G: 110, B: 180, A: 255}
	nominalBars.LineStyle.Width = vg.Length(0)
	nominalBars.Offset = -w / 2
	p.Add(nominalBars)
	p.Legend.Add("Nominal", nominalBars)

	adjustedBars, err := plotter.NewBarChart(adjusted, w)
	if err != nil {
		return "", err
	}
	adjustedBars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	adjustedBars.LineStyle.Width = vg.Length(0)
	adjustedBars.Offset = w / 2
	p.Add(adjustedBars)
	p.Legend.Add("Safety-adjusted", adjustedBars)

	windLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: r.WindLoad},
		{X: float64(len(r.Checks)) - 0.5, Y: r.WindLoad},
	})
	if err != nil {
		return "", err
	}
	windLine.LineStyle.Width = vg.Points(1.5)
	windLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	windLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(windLine)
	p.Legend.Add(fmt.Sprintf("Wind load (%.0f N)", r.WindLoad), windLine)

	labels := make([]string, len(r.Checks))
	for i, c := range r.Checks {
		labels[i] = fmt.Sprintf("%s\n%s", names[i], c.Verdict)
	}
	p.NominalX(labels...)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
