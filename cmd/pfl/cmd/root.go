package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pfl-lang/pfl/internal/config"
	"github.com/pfl-lang/pfl/internal/diag"
)

var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "pfl",
	Short: "PFL - front end for a small pure-functional expression language",
	Long: `pfl tokenizes and parses PFL source, reporting precise syntax
errors or printing the resulting syntax tree.

Input is either a path ending in .pfl or literal source code; multiple
source arguments are joined with spaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pfl.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// readInput resolves the command arguments to source text: a single argument
// ending in .pfl is read as a file, anything else is literal source joined
// with spaces.
func readInput(args []string) (src, filename string, err error) {
	if len(args) == 1 && strings.HasSuffix(args[0], ".pfl") {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	return strings.Join(args, " "), "", nil
}

func loadConfig() config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return cfg
}

func useColor(cfg config.Config) bool {
	if noColor {
		return false
	}
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("NO_COLOR") == ""
	}
}

// printDiagnostics renders diags to stderr with the configured formatter.
func printDiagnostics(src string, diags []diag.Diagnostic) {
	cfg := loadConfig()
	f := diag.NewFormatter(os.Stderr,
		diag.WithColor(useColor(cfg)),
		diag.WithContextLines(cfg.ContextLines),
		diag.WithMaxErrors(cfg.MaxErrors),
	)
	f.SetSource(src)
	f.Print(diags)
}
