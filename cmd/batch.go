package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/catalog"
	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/alexiusacademia/gowind/internal/report"
	"github.com/alexiusacademia/gowind/internal/scenario"
	"github.com/alexiusacademia/gowind/internal/windload"
	"github.com/spf13/cobra"
)

var (
	batchMaterial string
	batchXLSX     string
)

// ErrBatchFailures is returned when at least one scenario could not be
// analyzed.
var ErrBatchFailures = errors.New("some scenarios failed")

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml|file.xlsx>",
	Short: "Analyze every scenario in a project file",
	Long: `Analyze each scenario of a YAML project file or an XLSX workbook and
print a summary table. A scenario uses its own material, or --material
when it names none.

YAML layout:
  scenarios:
    - name: Tower A
      material: steel
      values:
        Height: 12
        Width: 6
        Wind Velocity: 72   # km/h
        ...

Workbook layout: a header row of parameter labels (plus optional Name
and Material columns), one scenario per row.

Examples:
  gowind batch project.yaml
  gowind batch towers.xlsx --material concrete --xlsx results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchMaterial, "material", "m", "", "Material for scenarios that name none")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Write results to this workbook")
}

func runBatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	scs, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("scenarios loaded", "file", args[0], "count", len(scs))

	cat := newCatalog()
	rows := make([]report.Row, 0, len(scs))
	failed := 0
	for _, sc := range scs {
		row := analyzeScenario(cat, sc)
		if row.Err != nil {
			failed++
			logger.Warn("scenario failed", "scenario", sc.Name, "error", row.Err)
		}
		rows = append(rows, row)
	}

	printTitle(out, fmt.Sprintf("WIND LOADING BATCH - %d SCENARIOS", len(scs)))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Name\tMaterial\tWind Load (N)\tGoverning\tVerdict\t")
	fmt.Fprintln(w, "  ────\t────────\t─────────────\t─────────\t───────\t")
	for _, row := range rows {
		windLoad := "-"
		if wl, ok := row.WindLoad(); ok {
			windLoad = fmt.Sprintf("%.2f", wl)
		}
		governing, verdict := "-", "ERROR"
		if row.Result != nil {
			if gov, ok := row.Result.Governing(); ok {
				governing = gov.Mode.String()
				verdict = verdictMark(gov.Verdict) + " " + gov.Verdict.String()
			}
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t\n", row.Name, row.Material, windLoad, governing, verdict)
	}
	w.Flush()
	fmt.Fprintln(out)

	for _, row := range rows {
		if row.Err != nil {
			fmt.Fprintf(out, "  ⚠ %s: %v\n", row.Name, row.Err)
		}
	}
	if failed > 0 {
		fmt.Fprintln(out)
	}

	if batchXLSX != "" {
		if err := report.WriteWorkbook(batchXLSX, rows); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Results written to: %s\n", batchXLSX)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailures, failed, len(scs))
	}
	return nil
}

// analyzeScenario builds a store for the scenario's material, applies its
// values and runs the analysis. Every failure ends up in Row.Err.
func analyzeScenario(cat *catalog.Catalog, sc scenario.Scenario) report.Row {
	row := report.Row{Name: sc.Name}

	name := sc.Material
	if name == "" {
		name = batchMaterial
	}
	if name == "" {
		row.Err = errors.New("no material given")
		return row
	}
	material, err := catalog.ParseMaterial(name)
	if err != nil {
		row.Err = err
		return row
	}
	row.Material = material.Title()

	specs, err := cat.Combined(material)
	if err != nil {
		row.Err = err
		return row
	}
	store := params.NewStore(specs, logger)
	if err := sc.Apply(store); err != nil {
		row.Err = err
		return row
	}
	row.Params = store.Params()

	if missing := store.Missing(); len(missing) > 0 {
		row.Err = fmt.Errorf("missing %d inputs, first: %s", len(missing), missing[0].Label())
		return row
	}

	row.Result, row.Err = windload.Analyze(row.Params)
	return row
}
