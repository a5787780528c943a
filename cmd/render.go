package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/alexiusacademia/gowind/internal/windload"
)

const rule = "───────────────────────────────────────────────────────────────"

func printTitle(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) *tabwriter.Writer {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule)
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printParameters(out io.Writer, p params.StructuralParameters) {
	w := printSection(out, "INPUT DATA:")
	for _, f := range params.Fields {
		v := p.Get(f)
		if f == params.FieldWindVelocity {
			fmt.Fprintf(w, "  %s:\t%.2f %s\t(%.2f km/h)\n", f.Label(), v, f.Unit(), v*params.KmhPerMs)
			continue
		}
		fmt.Fprintf(w, "  %s:\t%.2f %s\n", f.Label(), v, f.Unit())
	}
	w.Flush()
	fmt.Fprintln(out)
}

// printAnalysis writes every quantity r holds. When err is a domain error
// the partial result is printed up to the stage that failed.
func printAnalysis(out io.Writer, r *windload.AnalysisResult, err error) {
	reached := func(s windload.Stage) bool { return windload.Completed(err, s) }

	if r == nil {
		r = &windload.AnalysisResult{}
	}

	if reached(windload.StageDragCoefficient) {
		w := printSection(out, "WIND LOAD:")
		fmt.Fprintf(w, "  Drag Coefficient (Cd):\t%.4f\n", r.DragCoefficient)
		if reached(windload.StageWindPressure) {
			fmt.Fprintf(w, "  Wind Pressure:\t%.2f N/m²\n", r.WindPressure)
		}
		if reached(windload.StageWindLoad) {
			fmt.Fprintf(w, "  Cross-sectional Area:\t%.2f m²\n", r.CrossSectionalArea)
			fmt.Fprintf(w, "  Wind Load:\t%.2f N\n", r.WindLoad)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if reached(windload.StageStrength) {
		w := printSection(out, "FLOORS AND BEAMS:")
		if reached(windload.StageFloors) {
			fmt.Fprintf(w, "  Floors:\t%d\n", r.Floors)
			fmt.Fprintf(w, "  Floor Area:\t%.2f m²\n", r.FloorArea)
			fmt.Fprintf(w, "  Total Load:\t%.2f N\n", r.TotalLoad)
		}
		if reached(windload.StageBeamCount) {
			fmt.Fprintf(w, "  Beams:\t%d\n", r.BeamCount)
		}
		if reached(windload.StageBeamGeometry) {
			fmt.Fprintf(w, "  Beam Height:\t%.4f m\n", r.BeamHeight)
			fmt.Fprintf(w, "  Beam Width:\t%.4f m\n", r.BeamWidth)
			fmt.Fprintf(w, "  Moment of Inertia:\t%.6f m⁴\n", r.MomentOfInertia)
		}
		w.Flush()
		fmt.Fprintln(out)

		w = printSection(out, "NOMINAL STRENGTHS:")
		fmt.Fprintf(w, "  Tensile:\t%.2f N\n", r.TensileStrength)
		fmt.Fprintf(w, "  Shear:\t%.2f N\n", r.ShearStrength)
		if reached(windload.StageFlexural) {
			fmt.Fprintf(w, "  Maximum Flexural:\t%.2f N\n", r.MaximumFlexuralStrength)
		}
		if reached(windload.StageBuckling) {
			fmt.Fprintf(w, "  Buckling:\t%.2f N\n", r.BucklingStrength)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if len(r.Checks) > 0 {
		w := printSection(out, "CAPACITY CHECKS:")
		fmt.Fprintf(w, "  Mode\tNominal (N)\tAdjusted (N)\tVerdict\n")
		for _, c := range r.Checks {
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s %s\n", c.Mode, c.Nominal, c.Adjusted, verdictMark(c.Verdict), c.Verdict)
		}
		w.Flush()
		fmt.Fprintln(out)
		for _, c := range r.Checks {
			fmt.Fprintf(out, "  %s\n", c.Verdict.Describe(c.Mode))
		}
		fmt.Fprintln(out)

		if gov, ok := r.Governing(); ok {
			fmt.Fprintf(out, "  ╔═════════════════════════════════════════╗\n")
			fmt.Fprintf(out, "  ║  GOVERNING: %s %s\n", gov.Mode, gov.Verdict)
			fmt.Fprintf(out, "  ╚═════════════════════════════════════════╝\n")
			fmt.Fprintln(out)
		}
	}

	if err != nil {
		fmt.Fprintln(out, "ANALYSIS STOPPED:")
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "  ⚠ %v\n", err)
		fmt.Fprintln(out)
	}
}

func verdictMark(v windload.Verdict) string {
	switch v {
	case windload.VerdictFailure:
		return "✗"
	case windload.VerdictSurvivesUnsafe:
		return "⚠"
	default:
		return "✓"
	}
}
