package main

// This is an interpreter for a line-numbered BASIC written in Go.

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ltungv/basic/internal/basic"
)

func main() {
	configPath := flag.String("config", "", "read settings from a YAML `file`")
	trace := flag.Bool("trace", false, "log every executed line to stderr")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: basic [-config file] [-trace] [program]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(64)
	}

	config := basic.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = basic.LoadConfig(*configPath)
		exitOnError(err, 78)
	}

	input := bufio.NewReader(os.Stdin)
	reporter := basic.NewSimpleReporter(os.Stderr)
	interpreter := basic.NewInterpreter(input, os.Stdout, config)
	if *trace {
		interpreter.SetTrace(os.Stderr)
	}

	if len(args) != 1 {
		runPrompt(input, interpreter, reporter, config)
	} else {
		runFile(args[0], interpreter, reporter)
	}
}

// Run the interpreter in REPL mode. The banner and prompts are only shown
// when stdin is a terminal so that piped sessions print program output only.
func runPrompt(input *bufio.Reader, interpreter *basic.Interpreter, reporter basic.Reporter, config basic.Config) {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive && config.Banner != "" {
		fmt.Println(config.Banner)
	}
	for {
		if interactive {
			fmt.Print(config.Prompt)
		}
		line, err := input.ReadString('\n')
		if line != "" {
			if perr := interpreter.ProcessLine(line); perr != nil {
				if errors.Is(perr, basic.ErrQuit) {
					return
				}
				reporter.Report(perr)
			}
			reporter.Reset()
		}
		if err == io.EOF {
			return
		}
		exitOnError(err, 1)
	}
}

// Load the given program file and run it
func runFile(fpath string, interpreter *basic.Interpreter, reporter basic.Reporter) {
	f, err := os.Open(fpath)
	exitOnError(err, 1)
	defer f.Close()

	if err := interpreter.Load(f); err != nil {
		reporter.Report(err)
		os.Exit(65)
	}

	if err := interpreter.Run(); err != nil {
		reporter.Report(err)
	}
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
