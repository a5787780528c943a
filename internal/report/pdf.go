package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/alexiusacademia/gowind/internal/windload"
	"github.com/phpdave11/gofpdf"
)

// Meta carries the header fields of a PDF report.
type Meta struct {
	Title    string
	Project  string
	Author   string
	Material string
	Date     time.Time
}

// WritePDF renders an engineering report of the inputs, derived quantities
// and per-mode verdicts. When analysisErr stopped the analysis, only the
// quantities computed before the failing stage are listed, followed by the
// error.
func WritePDF(w io.Writer, meta Meta, p params.StructuralParameters, r *windload.AnalysisResult, analysisErr error) error {
	if meta.Title == "" {
		meta.Title = "Wind Loading Report"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []struct{ k, v string }{
		{"Project", meta.Project},
		{"Author", meta.Author},
		{"Material", meta.Material},
		{"Date", meta.Date.Format("2006-01-02")},
	} {
		if line.v == "" {
			continue
		}
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s", line.k, line.v)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section(pdf, "Input Parameters")
	for _, f := range params.Fields {
		row(pdf, tr, f.Label(), fmt.Sprintf("%.2f %s", p.Get(f), f.Unit()))
	}
	pdf.Ln(4)

	for _, sec := range resultSections(r, analysisErr) {
		section(pdf, sec.Title)
		for _, kv := range sec.Rows {
			row(pdf, tr, kv[0], kv[1])
		}
		if sec.Note != "" {
			pdf.SetTextColor(160, 0, 0)
			pdf.MultiCell(0, 5, tr(sec.Note), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(4)
	}

	if r != nil && len(r.Checks) > 0 {
		section(pdf, "Capacity Checks")
		pdf.SetFont("Helvetica", "B", 10)
		for _, h := range []string{"Mode", "Nominal (N)", "Adjusted (N)", "Verdict"} {
			pdf.CellFormat(45, 7, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, c := range r.Checks {
			pdf.CellFormat(45, 7, c.Mode.String(), "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", c.Nominal), "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 7, fmt.Sprintf("%.2f", c.Adjusted), "1", 0, "R", false, 0, "")
			red, green, blue := verdictColor(c.Verdict)
			pdf.SetFillColor(red, green, blue)
			pdf.CellFormat(45, 7, c.Verdict.String(), "1", 0, "C", true, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		for _, c := range r.Checks {
			pdf.MultiCell(0, 5, tr(c.Verdict.Describe(c.Mode)), "", "L", false)
		}
	}

	return pdf.Output(w)
}

// reportSection is one titled block of label/value rows, with an optional
// paragraph under it.
type reportSection struct {
	Title string
	Rows  [][2]string
	Note  string
}

// resultSections lists the derived quantities the analysis reached before
// err, plus an "Analysis Stopped" section when err is set.
func resultSections(r *windload.AnalysisResult, err error) []reportSection {
	if r == nil {
		r = &windload.AnalysisResult{}
	}
	reached := func(s windload.Stage) bool { return windload.Completed(err, s) }

	var out []reportSection
	if reached(windload.StageDragCoefficient) {
		sec := reportSection{Title: "Wind Load"}
		sec.Rows = append(sec.Rows, [2]string{"Drag coefficient", fmt.Sprintf("%.4f", r.DragCoefficient)})
		if reached(windload.StageWindPressure) {
			sec.Rows = append(sec.Rows, [2]string{"Wind pressure", fmt.Sprintf("%.2f N/m²", r.WindPressure)})
		}
		if reached(windload.StageWindLoad) {
			sec.Rows = append(sec.Rows,
				[2]string{"Cross-sectional area", fmt.Sprintf("%.2f m²", r.CrossSectionalArea)},
				[2]string{"Wind load", fmt.Sprintf("%.2f N", r.WindLoad)})
		}
		out = append(out, sec)
	}

	if reached(windload.StageStrength) {
		sec := reportSection{Title: "Floors and Beams"}
		if reached(windload.StageFloors) {
			sec.Rows = append(sec.Rows,
				[2]string{"Floors", fmt.Sprintf("%d", r.Floors)},
				[2]string{"Floor area", fmt.Sprintf("%.2f m²", r.FloorArea)},
				[2]string{"Total load", fmt.Sprintf("%.2f N", r.TotalLoad)})
		}
		if reached(windload.StageBeamCount) {
			sec.Rows = append(sec.Rows, [2]string{"Beams", fmt.Sprintf("%d", r.BeamCount)})
		}
		if reached(windload.StageBeamGeometry) {
			sec.Rows = append(sec.Rows,
				[2]string{"Beam height x width", fmt.Sprintf("%.4f x %.4f m", r.BeamHeight, r.BeamWidth)},
				[2]string{"Moment of inertia", fmt.Sprintf("%.6f m^4", r.MomentOfInertia)})
		}
		if len(sec.Rows) > 0 {
			out = append(out, sec)
		}
	}

	if err != nil {
		out = append(out, reportSection{Title: "Analysis Stopped", Note: err.Error()})
	}
	return out
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.CellFormat(70, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func verdictColor(v windload.Verdict) (int, int, int) {
	switch v {
	case windload.VerdictFailure:
		return 240, 128, 128
	case windload.VerdictSurvivesUnsafe:
		return 255, 215, 120
	default:
		return 150, 220, 150
	}
}
