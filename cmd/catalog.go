package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gowind/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [dataset]",
	Short: "List parameter datasets or show one dataset's ranges",
	Long: `Without arguments, list the available datasets. With a dataset name
or menu code (BU, W, C, BR, ST, EL), print its parameter ranges. With
--raw the dataset is printed as records, ready to edit and load back
through --data-dir.

Examples:
  gowind catalog
  gowind catalog building
  gowind catalog EL --raw > data/steel.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

var catalogRaw bool

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogRaw, "raw", false, "print the dataset as name,min,max,unit records")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "DATASETS:")
		fmt.Fprintln(out, rule)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, d := range catalog.Datasets {
			fmt.Fprintf(w, "  %s\t%s\n", d.Code(), d.Title())
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	}

	d, err := catalog.ParseDataset(args[0])
	if err != nil {
		return err
	}
	specs, err := newCatalog().Load(d)
	if err != nil {
		return err
	}

	if catalogRaw {
		return catalog.Write(out, specs)
	}

	printTitle(out, fmt.Sprintf("%s DATA", d.Title()))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Parameter\tMin\tMax\tUnit\t")
	fmt.Fprintln(w, "  ─────────\t───\t───\t────\t")
	for _, s := range specs {
		fmt.Fprintf(w, "  %s\t%g\t%g\t%s\t\n", s.Name, s.Min, s.Max, s.Unit)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
