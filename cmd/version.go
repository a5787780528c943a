package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowind/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowind",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gowind %s\n", version.String())
		fmt.Fprintln(out, "Wind Loading of Structures Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
