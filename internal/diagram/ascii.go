package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gowind/internal/windload"
)

// barWidth is the number of characters of a full-scale bar.
const barWidth = 36

// DrawASCIICapacityChart draws, for every failure mode, the nominal and
// safety-adjusted strengths next to the wind load. Each mode is scaled to
// the larger of its nominal strength and the wind load.
func DrawASCIICapacityChart(r *windload.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  CAPACITY CHECKS            █ nominal  ▒ adjusted  ░ wind load\n")
	sb.WriteString("  ───────────────\n")

	if r == nil || len(r.Checks) == 0 {
		sb.WriteString("  (no capacity checks available)\n")
		return sb.String()
	}

	for _, c := range r.Checks {
		scale := math.Max(c.Nominal, r.WindLoad)
		fmt.Fprintf(&sb, "  %-9s │%s│ %14.2f N\n", c.Mode, bar(c.Nominal, scale, "█"), c.Nominal)
		fmt.Fprintf(&sb, "  %-9s │%s│ %14.2f N\n", "", bar(c.Adjusted, scale, "▒"), c.Adjusted)
		fmt.Fprintf(&sb, "  %-9s │%s│ %14.2f N  %s %s\n", "", bar(r.WindLoad, scale, "░"), r.WindLoad,
			verdictMark(c.Verdict), c.Verdict)
		sb.WriteString("\n")
	}

	if gov, ok := r.Governing(); ok {
		fmt.Fprintf(&sb, "  Governing mode: %s (%s, utilization %.2f)\n", gov.Mode, gov.Verdict, gov.Utilization(r.WindLoad))
	}
	return sb.String()
}

func bar(v, scale float64, fill string) string {
	n := 0
	if scale > 0 && v > 0 {
		n = int(math.Round(v / scale * barWidth))
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat(fill, n) + strings.Repeat(" ", barWidth-n)
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
