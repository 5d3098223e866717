// Command classlisp is the reference CLI for the interpreter core: it
// wires internal/sexpr (tokenize+parse) to internal/classdef (load) to
// internal/interp (evaluate), the same front-to-back pipeline spec.md
// §1 describes as out of scope for the core itself.
//
// Grounded on the teacher's cmd/dwscript layout: a thin main.go
// delegating to cmd.Execute().
package main

import (
	"os"

	"github.com/cwbudde/classlisp/cmd/classlisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
