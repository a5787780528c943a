package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gowind/internal/catalog"
	"github.com/alexiusacademia/gowind/internal/config"
	"github.com/alexiusacademia/gowind/internal/observability"
	"github.com/alexiusacademia/gowind/internal/version"
	"github.com/spf13/cobra"
)

var (
	dataDir string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gowind",
	Short: "Wind Loading of Structures Calculator",
	Long: `gowind - Go Wind Loading Calculator

A CLI tool that estimates the wind load on a rectangular building
and checks it against the strength of the structural material.

For a set of building, air and material parameters it computes:
  - Drag coefficient, wind pressure and total wind load
  - Tensile, shear, flexural and buckling strength
  - Floor count, beam count and beam dimensions
  - A SAFE / SURVIVES_UNSAFE / FAILURE verdict per failure mode

Parameter ranges come from the building and material datasets
(see 'gowind catalog').`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if dataDir != "" {
			c.DataDir = dataDir
		}
		cfg = c
		logger = observability.NewLogger(cfg, os.Stderr)
		logger.Debug("configuration loaded", "data_dir", cfg.DataDir, "save_file", cfg.SaveFile)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gowind v%-48s║\n", version.Version)
		fmt.Fprintf(out, "  ║   %-56s║\n", "Wind Loading of Structures Calculator")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Checks a building against the wind load it must resist.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Wind load from drag coefficient, air density and velocity")
		fmt.Fprintln(out, "    • Tensile, shear, flexural and buckling checks")
		fmt.Fprintln(out, "    • Wood, concrete, brick, stone and steel datasets")
		fmt.Fprintln(out, "    • Interactive prompting, YAML and XLSX batch runs")
		fmt.Fprintln(out, "    • Text, PDF, XLSX and chart reports")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gowind --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"Directory of <dataset>.csv files (default: built-in datasets, or $GOWIND_DATA_DIR)")
}

func newCatalog() *catalog.Catalog {
	return catalog.New(cfg.DataDir, logger)
}
