package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "classlisp",
	Short: "classlisp interpreter",
	Long: `classlisp runs programs written in a small s-expression-based,
class-oriented toy language: single inheritance, overloaded methods
selected by the runtime types of their arguments, me/super, try/throw, and generic
("tclass") classes specialized per use site.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// stderrIsTTY reports whether diagnostics printed to stderr may use
// color, per the NO_COLOR convention and an isatty check — the same
// gate the pack's terminal-output code (funxy's builtins_term.go) uses
// before emitting ANSI.
func stderrIsTTY() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorizeError wraps the whole diagnostic message in red when stderr
// is a color-capable terminal, and returns it unchanged otherwise.
func colorizeError(msg string) string {
	if !stderrIsTTY() {
		return msg
	}
	return "\x1b[31m" + msg + "\x1b[0m"
}
