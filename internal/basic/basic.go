package basic

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ltungv/basic/internal/scanner"
)

const helpText = `Commands:
    RUN                run the stored program from its first line
    LIST               list the stored program
    CLEAR              delete the stored program and all variables
    QUIT               leave the interpreter
    HELP               show this text
    n                  delete line n
    n <statement>      store <statement> as line n

Statements:
    REM ...                     comment
    LET <var> = <expr>          assign a variable
    PRINT <expr>                print the value of an expression
    INPUT <var>                 read an integer into a variable
    END                         stop the program (leave the interpreter when typed alone)
    GOTO n                      continue at line n
    IF <expr> op <expr> THEN n  continue at line n when the comparison holds, op is = < or >
`

// ProcessLine handles one line typed by the user. A line starting with a line
// number is stored, replaced, or deleted when nothing follows the number.
// Any other line is a command or a statement executed right away.
//
// ErrQuit is returned when the user asks to leave the interpreter.
func (in *Interpreter) ProcessLine(line string) error {
	line = strings.TrimSpace(line)
	in.scanner.SetInput(line)
	parser := NewParser(in.scanner)

	tok, err := parser.next()
	if err != nil {
		return err
	}
	if tok.Type == scanner.END {
		return nil
	}

	lineNumber := 0
	if tok.Type == scanner.NUMBER {
		if lineNumber, err = parseLineNumber(tok); err != nil {
			return err
		}
		if tok, err = parser.next(); err != nil {
			return err
		}
		if tok.Type == scanner.END {
			in.program.Remove(lineNumber)
			return nil
		}
	}
	if tok.Type != scanner.WORD {
		return NewError(SyntaxError)
	}

	if lineNumber == 0 {
		return in.immediate(parser, tok.Lexeme)
	}

	stmt, err := parser.Statement(tok.Lexeme)
	if err != nil {
		return err
	}
	in.program.AddOrReplace(lineNumber, line)
	return in.program.SetStatement(lineNumber, stmt)
}

func (in *Interpreter) immediate(parser *Parser, keyword string) error {
	switch keyword {
	case "RUN", "LIST", "CLEAR", "QUIT", "HELP", "END":
		if err := parser.end(); err != nil {
			return err
		}
	case "GOTO", "IF":
		return NewError(SyntaxError)
	}

	switch keyword {
	case "RUN":
		return in.Run()
	case "LIST":
		in.List()
		return nil
	case "CLEAR":
		in.Clear()
		return nil
	case "HELP":
		fmt.Fprint(in.output, helpText)
		return nil
	case "QUIT", "END":
		return ErrQuit
	}

	stmt, err := parser.Statement(keyword)
	if err != nil {
		return err
	}
	_, err = in.exec(stmt)
	return err
}

// Load reads a program, one numbered line per input line, into the store.
// Blank lines are skipped. Loading stops at the first line that fails.
func (in *Interpreter) Load(r io.Reader) error {
	lines := bufio.NewScanner(r)
	lines.Split(bufio.ScanLines)
	for n := 1; lines.Scan(); n++ {
		text := strings.TrimSpace(lines.Text())
		if text == "" {
			continue
		}
		if text[0] < '0' || text[0] > '9' {
			return fmt.Errorf("line %d: %w", n, NewError(SyntaxError))
		}
		if err := in.ProcessLine(text); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return lines.Err()
}
