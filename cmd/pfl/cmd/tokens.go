package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfl-lang/pfl/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.pfl | source...>",
	Short: "Dump the token stream with spans",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, filename, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		lx := lexer.New(src)
		if filename != "" {
			lx.SetFilename(filename)
		}

		for _, tok := range lx.Tokenize() {
			fmt.Printf("%d:%d\t%s\t%q\n", tok.Span.Line, tok.Span.Column, tok.Type, tok.Literal)
		}

		if len(lx.Errors) > 0 {
			for _, e := range lx.Errors {
				fmt.Fprintln(os.Stderr, e.ToDiagnostic().String())
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
