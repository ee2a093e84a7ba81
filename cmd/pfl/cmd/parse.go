package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfl-lang/pfl/internal/ast"
	"github.com/pfl-lang/pfl/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.pfl | source...>",
	Short: "Parse PFL source and print the syntax tree",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, filename, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		prog, diags := parser.Parse(src, parser.WithFilename(filename))
		if len(diags) > 0 {
			printDiagnostics(src, diags)
			os.Exit(1)
		}

		fmt.Print(ast.Print(prog))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
