package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/classlisp/internal/classdef"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/host"
	"github.com/cwbudde/classlisp/internal/interp"
	"github.com/cwbudde/classlisp/internal/sexpr"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a classlisp program",
	Long: `Load and run a classlisp program: instantiates the "main" class and
invokes its parameterless "main" method.

If no file is given, the program is read from stdin.

Examples:
  classlisp run program.lisp
  cat program.lisp | classlisp run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(_ *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := sexpr.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, colorizeError(fmt.Sprintf("%s: SYNTAX error: %s", filename, err)))
		return fmt.Errorf("parsing failed")
	}

	registry, err := classdef.Load(prog)
	if err != nil {
		reportLoadError(filename, err)
		return fmt.Errorf("loading failed")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d class(es): %v\n", len(registry.Names()), registry.Names())
	}

	h := host.NewStdio(os.Stdout, os.Stderr, os.Stdin)
	it := interp.New(registry, h)
	if err := it.Run(); err != nil {
		return fmt.Errorf("execution failed")
	}
	return nil
}

// readSource resolves the run/parse commands' shared input convention:
// a file path argument, or stdin when none is given.
func readSource(args []string) (src, filename string, err error) {
	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return "", filename, fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(content), filename, nil
	}

	filename = "<stdin>"
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", filename, fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), filename, nil
}

// reportLoadError prints a *herrors.Error (the only error type
// classdef.Load returns) with the same category-prefixed format the
// Host adapter uses for runtime diagnostics, so load-time and
// run-time failures read identically.
func reportLoadError(filename string, err error) {
	if he, ok := err.(*herrors.Error); ok {
		fmt.Fprintln(os.Stderr, colorizeError(fmt.Sprintf("%s: %s", filename, he.Error())))
		return
	}
	fmt.Fprintln(os.Stderr, colorizeError(fmt.Sprintf("%s: %s", filename, err)))
}
