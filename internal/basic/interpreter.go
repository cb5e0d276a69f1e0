package basic

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ltungv/basic/internal/scanner"
)

// Interpreter owns one BASIC session: the variables, the stored program and
// the console it talks to. It implements both ExprVisitor and StmtVisitor.
type Interpreter struct {
	environment *Environment
	program     *Program
	scanner     *scanner.Scanner
	input       *bufio.Reader
	output      io.Writer
	trace       io.Writer
	printer     AstPrinter
	config      Config
}

// NewInterpreter creates a session reading INPUT values from input and
// writing program output to output. Passing a *bufio.Reader lets the caller
// share it with its own line reading.
func NewInterpreter(input io.Reader, output io.Writer, config Config) *Interpreter {
	return &Interpreter{
		environment: NewEnvironment(),
		program:     NewProgram(),
		scanner:     NewLineScanner(),
		input:       bufio.NewReader(input),
		output:      output,
		config:      config,
	}
}

// SetTrace makes the interpreter log every line executed by RUN to w. A nil
// writer turns tracing off.
func (in *Interpreter) SetTrace(w io.Writer) {
	in.trace = w
}

func (in *Interpreter) Environment() *Environment {
	return in.environment
}

func (in *Interpreter) Program() *Program {
	return in.program
}

// Run executes the stored program from its first line. The first error stops
// the whole run; side effects of the lines already executed are kept.
func (in *Interpreter) Run() error {
	line, ok := in.program.First()
	for ok {
		ctl := fallThrough
		if stmt, _ := in.program.Statement(line); stmt != nil {
			if in.trace != nil {
				fmt.Fprintf(in.trace, "[%d] %s\n", line, in.printer.PrintStmt(stmt))
			}
			var err error
			if ctl, err = in.exec(stmt); err != nil {
				return atLine(err, line)
			}
		}

		switch ctl.kind {
		case controlHalt:
			return nil
		case controlJump:
			line = ctl.target
		default:
			line, ok = in.program.Next(line)
		}
	}
	return nil
}

// List writes the source of every stored line to the output.
func (in *Interpreter) List() {
	for _, source := range in.program.List() {
		fmt.Fprintln(in.output, source)
	}
}

// Clear forgets the stored program and every variable.
func (in *Interpreter) Clear() {
	in.program.Clear()
	in.environment.Clear()
}

// Eval evaluates an expression against the session's variables.
func (in *Interpreter) Eval(expr Expr) (int64, error) {
	value, err := expr.Accept(in)
	if err != nil {
		return 0, err
	}
	return value.(int64), nil
}

func (in *Interpreter) VisitConstantExpr(expr *ConstantExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	return in.environment.Get(expr.Name)
}

func (in *Interpreter) VisitCompoundExpr(expr *CompoundExpr) (interface{}, error) {
	if expr.Op == "=" {
		return in.assign(expr)
	}

	lhs, err := in.Eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case "+":
		return lhs + rhs, nil
	case "-":
		return lhs - rhs, nil
	case "*":
		return lhs * rhs, nil
	case "/":
		if rhs == 0 {
			return nil, NewError(DivideByZero)
		}
		return lhs / rhs, nil
	}
	return nil, NewError(SyntaxError)
}

func (in *Interpreter) assign(expr *CompoundExpr) (interface{}, error) {
	name, ok := expr.Lhs.(*IdentifierExpr)
	if !ok {
		return nil, NewError(IllegalAssignmentTarget)
	}
	if IsReserved(name.Name) {
		return nil, NewError(SyntaxError)
	}
	value, err := in.Eval(expr.Rhs)
	if err != nil {
		return nil, err
	}
	in.environment.Set(name.Name, value)
	return value, nil
}

func (in *Interpreter) VisitRemStmt(stmt *RemStmt) (interface{}, error) {
	return fallThrough, nil
}

func (in *Interpreter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	value, err := in.Eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	in.environment.Set(stmt.Name, value)
	return fallThrough, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	value, err := in.Eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, value)
	return fallThrough, nil
}

// VisitInputStmt prompts until the user types an optionally signed integer.
// Running out of input while waiting is reported as io.ErrUnexpectedEOF.
func (in *Interpreter) VisitInputStmt(stmt *InputStmt) (interface{}, error) {
	for {
		fmt.Fprint(in.output, in.config.InputPrompt)
		line, readErr := in.input.ReadString('\n')
		if value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64); err == nil {
			in.environment.Set(stmt.Name, value)
			return fallThrough, nil
		}
		if readErr == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		if readErr != nil {
			return nil, readErr
		}
		fmt.Fprintln(in.output, in.config.InvalidNumber)
	}
}

func (in *Interpreter) VisitEndStmt(stmt *EndStmt) (interface{}, error) {
	return halt, nil
}

func (in *Interpreter) VisitGotoStmt(stmt *GotoStmt) (interface{}, error) {
	return in.jump(stmt.Target)
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	lhs, err := in.Eval(stmt.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Eval(stmt.Rhs)
	if err != nil {
		return nil, err
	}

	var holds bool
	switch stmt.Op {
	case "=":
		holds = lhs == rhs
	case "<":
		holds = lhs < rhs
	case ">":
		holds = lhs > rhs
	default:
		return nil, NewError(SyntaxError)
	}
	if !holds {
		return fallThrough, nil
	}
	return in.jump(stmt.Target)
}

func (in *Interpreter) jump(target int) (interface{}, error) {
	if !in.program.Has(target) {
		return nil, NewError(LineNumberError)
	}
	return jumpTo(target), nil
}

func (in *Interpreter) exec(stmt Stmt) (Control, error) {
	ctl, err := stmt.Accept(in)
	if err != nil {
		return Control{}, err
	}
	return ctl.(Control), nil
}
