package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gowind/internal/catalog"
	"github.com/alexiusacademia/gowind/internal/params"
	"github.com/alexiusacademia/gowind/internal/prompt"
	"github.com/alexiusacademia/gowind/internal/windload"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Enter parameters at the console and check the building",
	Long: `Prompt for the material, then for every building and material
parameter. Each value is checked against its dataset range and asked
again until it is valid. After the analysis the same building can be
checked with another material, entering only the material values.
Finally the inputs can be saved as a text report ($GOWIND_SAVE_FILE,
default UserInputs.txt).`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	sess := prompt.NewSession(cmd.InOrStdin(), out)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Welcome to the Wind Loading of Structures Calculator!")
	fmt.Fprintln(out, "Choose custom parameters for your structure, the air conditions,")
	fmt.Fprintln(out, "and the material type and its properties.")
	fmt.Fprintln(out)

	material, err := chooseMaterial(sess, out)
	if err != nil {
		return endOfInput(err)
	}

	cat := newCatalog()
	specs, err := cat.Combined(material)
	if err != nil {
		return err
	}
	store := params.NewStore(specs, logger)
	if err := sess.Collect(store); err != nil {
		return endOfInput(err)
	}

	var analysisErr error
	for {
		p := store.Params()
		printTitle(out, "WIND LOADING ANALYSIS - "+strings.ToUpper(material.Title()))
		printParameters(out, p)

		var result *windload.AnalysisResult
		result, analysisErr = windload.Analyze(p)
		printAnalysis(out, result, analysisErr)

		again, err := sess.Confirm("Check the same building with another material")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			break
		}

		// Building values stay assigned; only the material is asked again.
		if material, err = chooseMaterial(sess, out); err != nil {
			return endOfInput(err)
		}
		specs, err := cat.Combined(material)
		if err != nil {
			return err
		}
		matSpecs, err := cat.Load(material)
		if err != nil {
			return err
		}
		store.Replace(specs)
		if err := sess.CollectSpecs(store, matSpecs); err != nil {
			return endOfInput(err)
		}
	}

	save, err := sess.Confirm("Save the inputs to " + cfg.SaveFile)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if save {
		saveParameters(cmd, store.Params())
	}
	return analysisErr
}

func chooseMaterial(sess *prompt.Session, out io.Writer) (catalog.Dataset, error) {
	codes := make([]string, len(catalog.Materials))
	for i, m := range catalog.Materials {
		codes[i] = m.Code()
		fmt.Fprintf(out, "  %d. (%s) %s\n", i+1, m.Code(), m.Title())
	}
	fmt.Fprintln(out)

	choice, err := sess.Choose("Select the material: ", codes)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(out)
	return catalog.Materials[choice], nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("input ended: %w", io.ErrUnexpectedEOF)
	}
	return err
}
