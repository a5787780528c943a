package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gowind/internal/catalog"
	"github.com/alexiusacademia/gowind/internal/diagram"
	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/alexiusacademia/gowind/internal/report"
	"github.com/alexiusacademia/gowind/internal/scenario"
	"github.com/alexiusacademia/gowind/internal/windload"
	"github.com/spf13/cobra"
)

var (
	// Analysis inputs, by parameter
	analyzeValues = map[params.Field]*float64{}

	analyzeMaterial string
	analyzeInput    string
	analyzeSave     bool
	analyzePDF      string
	analyzeDiagram  bool
	analyzeOutput   string
)

// analyzeFlags maps flag names to parameters in canonical order.
var analyzeFlags = []struct {
	name  string
	field params.Field
	usage string
}{
	{"height", params.FieldHeight, "Building height (m)"},
	{"width", params.FieldWidth, "Building width (m)"},
	{"length", params.FieldLength, "Building length (m)"},
	{"wind", params.FieldWindVelocity, "Wind velocity (km/h)"},
	{"air-density", params.FieldAirDensity, "Air density (kg/m³)"},
	{"safety-factor", params.FieldSafetyFactor, "Safety factor"},
	{"yield-strength", params.FieldYieldStrength, "Material yield strength (MPa)"},
	{"shear-strength", params.FieldAverageShearStrength, "Material average shear strength (MPa)"},
	{"elastic-modulus", params.FieldElasticModulus, "Material elastic modulus (GPa)"},
	{"load-capacity", params.FieldLoadCapacity, "Load capacity of one beam (N)"},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check a building against the wind load",
	Long: `Compute the wind load on a rectangular building and compare it with
the tensile, shear, flexural and buckling strength of its material.

Inputs come from flags, from a scenario file (--input), or both; flags
override values from the file. With --material every value is checked
against the building and material dataset ranges.

Examples:
  # A 12 m steel building in a 72 km/h wind
  gowind analyze --height 12 --width 6 --length 10 --wind 72 \
    --air-density 1.225 --safety-factor 1.5 --yield-strength 250 \
    --shear-strength 150 --elastic-modulus 200 --load-capacity 500 \
    --material steel

  # First scenario of a project file, with a chart and a PDF report
  gowind analyze --input tower.yaml --diagram --output chart.png --pdf tower.pdf`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	for _, f := range analyzeFlags {
		v := new(float64)
		analyzeValues[f.field] = v
		analyzeCmd.Flags().Float64Var(v, f.name, 0, f.usage)
	}

	analyzeCmd.Flags().StringVarP(&analyzeMaterial, "material", "m", "", "Material dataset for range checks (wood, concrete, brick, stone, steel)")
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Scenario file (.yaml or .xlsx); the first scenario is used")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the inputs as a text report ($GOWIND_SAVE_FILE, default UserInputs.txt)")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF report to this file")
	analyzeCmd.Flags().BoolVarP(&analyzeDiagram, "diagram", "d", false, "Show ASCII capacity chart")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export capacity chart image (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var sc *scenario.Scenario
	if analyzeInput != "" {
		scs, err := scenario.Load(analyzeInput)
		if err != nil {
			return err
		}
		if len(scs) == 0 {
			return fmt.Errorf("%s: no scenarios", analyzeInput)
		}
		sc = &scs[0]
		if len(scs) > 1 {
			logger.Info("using first scenario", "file", analyzeInput, "scenario", sc.Name, "available", len(scs))
		}
	}

	materialName := analyzeMaterial
	if materialName == "" && sc != nil {
		materialName = sc.Material
	}

	var specs []params.Spec
	var material catalog.Dataset
	if materialName != "" {
		m, err := catalog.ParseMaterial(materialName)
		if err != nil {
			return err
		}
		material = m
		specs, err = newCatalog().Combined(material)
		if err != nil {
			return err
		}
	}

	store := params.NewStore(specs, logger)
	if sc != nil {
		if err := sc.Apply(store); err != nil {
			return err
		}
	}
	for _, f := range analyzeFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v := *analyzeValues[f.field]
		if spec, ok := store.SpecFor(f.field); ok {
			if err := spec.Check(v); err != nil {
				return fmt.Errorf("--%s: %w", f.name, err)
			}
		}
		store.Assign(f.field.Label(), v)
	}

	if missing := store.Missing(); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = f.Label()
		}
		return fmt.Errorf("missing inputs: %s", strings.Join(labels, ", "))
	}

	p := store.Params()
	title := "WIND LOADING ANALYSIS"
	if material != "" {
		title += " - " + strings.ToUpper(material.Title())
	}
	printTitle(out, title)
	printParameters(out, p)

	result, analysisErr := windload.Analyze(p)
	printAnalysis(out, result, analysisErr)

	if analyzeDiagram && analysisErr == nil {
		fmt.Fprint(out, diagram.DrawASCIICapacityChart(result))
		fmt.Fprintln(out)
	}

	if analyzeOutput != "" && analysisErr == nil {
		name, err := diagram.ExportCapacityChart(result, analyzeOutput)
		if err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Fprintf(out, "  Chart exported to: %s\n", name)
	}

	if analyzePDF != "" {
		if err := writePDFReport(analyzePDF, material, sc, p, result, analysisErr); err != nil {
			return err
		}
		fmt.Fprintf(out, "  PDF report written to: %s\n", analyzePDF)
	}

	if analyzeSave {
		saveParameters(cmd, p)
	}

	return analysisErr
}

func writePDFReport(path string, material catalog.Dataset, sc *scenario.Scenario, p params.StructuralParameters, r *windload.AnalysisResult, analysisErr error) error {
	meta := report.Meta{Material: material.Title()}
	if sc != nil {
		meta.Project = sc.Name
	}

	f, err := os.Create(path)
	if err != nil {
		return &report.PersistenceError{Path: path, Err: err}
	}
	if err := report.WritePDF(f, meta, p, r, analysisErr); err != nil {
		f.Close()
		return fmt.Errorf("writing PDF report: %w", err)
	}
	if err := f.Close(); err != nil {
		return &report.PersistenceError{Path: path, Err: err}
	}
	return nil
}

// saveParameters writes the text report to the configured file. A failure
// is reported and logged but does not stop the command.
func saveParameters(cmd *cobra.Command, p params.StructuralParameters) {
	out := cmd.OutOrStdout()
	if err := report.SaveParameters(cfg.SaveFile, p); err != nil {
		logger.Warn("saving parameters failed", "path", cfg.SaveFile, "error", err)
		fmt.Fprintln(out, "User data failed to save.")
		return
	}
	fmt.Fprintf(out, "User data successfully saved to %s.\n", cfg.SaveFile)
}
