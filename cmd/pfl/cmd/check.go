package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfl-lang/pfl/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.pfl | source...>",
	Short: "Parse PFL source and report only diagnostics",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, filename, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		_, diags := parser.Parse(src, parser.WithFilename(filename))
		if len(diags) > 0 {
			printDiagnostics(src, diags)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
