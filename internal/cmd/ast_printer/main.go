package main

// Prints the parse tree of every line of a BASIC program, in line order.

import (
	"fmt"
	"io"
	"os"

	"github.com/ltungv/basic/internal/basic"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast_printer [program]")
		os.Exit(64)
	}

	var src io.Reader = os.Stdin
	if len(os.Args) == 2 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		src = f
	}

	interpreter := basic.NewInterpreter(os.Stdin, io.Discard, basic.DefaultConfig())
	if err := interpreter.Load(src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}

	printer := basic.AstPrinter{}
	program := interpreter.Program()
	for line, ok := program.First(); ok; line, ok = program.Next(line) {
		if stmt, _ := program.Statement(line); stmt != nil {
			fmt.Printf("%d %s\n", line, printer.PrintStmt(stmt))
		}
	}
}
