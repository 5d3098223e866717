package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/classlisp/internal/ast"
	"github.com/cwbudde/classlisp/internal/sexpr"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a classlisp program and display its AST",
	Long: `Parse classlisp source into the internal/ast tree and print it.

If no file is provided, reads from stdin.
Use --dump-ast to show an indented structural view instead of the
surface s-expression rendering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump an indented structural view of the AST")
}

func runParse(_ *cobra.Command, args []string) error {
	src, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := sexpr.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filename, err)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		for _, form := range prog.Forms {
			dumpNode(form, 0)
		}
	} else {
		fmt.Println(prog.String())
	}
	return nil
}

func dumpNode(n ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	switch v := n.(type) {
	case *ast.Atom:
		if v.Quoted {
			fmt.Printf("%sAtom(string): %q\n", pad, v.Text)
		} else {
			fmt.Printf("%sAtom: %s\n", pad, v.Text)
		}
	case *ast.List:
		fmt.Printf("%sList (%d item(s)): %s\n", pad, len(v.Items), v.Head())
		for _, it := range v.Items {
			dumpNode(it, indent+1)
		}
	default:
		fmt.Printf("%s%T: %v\n", pad, n, n)
	}
}
