package basic

import (
	"errors"
	"strconv"

	"github.com/ltungv/basic/internal/scanner"
)

var reservedWords = map[string]struct{}{
	"REM":   {},
	"LET":   {},
	"PRINT": {},
	"INPUT": {},
	"END":   {},
	"GOTO":  {},
	"IF":    {},
	"THEN":  {},
	"RUN":   {},
	"LIST":  {},
	"CLEAR": {},
	"QUIT":  {},
	"HELP":  {},
}

// IsReserved reports whether name is a keyword and thus not a legal variable
// name.
func IsReserved(name string) bool {
	_, ok := reservedWords[name]
	return ok
}

var comparisonOps = map[string]struct{}{
	"=": {},
	"<": {},
	">": {},
}

// NewLineScanner creates the scanner configuration used for BASIC source
// lines.
func NewLineScanner() *scanner.Scanner {
	return scanner.New(scanner.Options{
		SkipWhitespace: true,
		ScanNumbers:    true,
		ScanStrings:    true,
	})
}

// Parser composes expression trees and statements from the tokens of a
// single line.
//
// Grammar
//
//	expression --> assign ;
//	assign     --> term ( "=" assign )? ;
//	term       --> factor ( ( "+" | "-" ) factor )* ;
//	factor     --> unary ( ( "*" | "/" ) unary )* ;
//	unary      --> "-" NUMBER
//	             | "-" unary
//	             | primary ;
//	primary    --> NUMBER | IDENT | "(" expression ")" ;
//
// The left side of "=" must be a bare identifier, not even parenthesized.
type Parser struct {
	scanner *scanner.Scanner
	// err holds a scanning failure hit while peeking, reported by the next
	// read.
	err error
}

// NewParser creates a parser reading from the given scanner
func NewParser(scanner *scanner.Scanner) *Parser {
	return &Parser{scanner: scanner}
}

// ParseExpression parses the rest of the scanner's input as one expression.
func ParseExpression(scanner *scanner.Scanner) (Expr, error) {
	parser := NewParser(scanner)
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.end(); err != nil {
		return nil, err
	}
	return expr, nil
}

// Statement parses the statement introduced by keyword, which has already
// been read, and requires the line to end afterwards.
func (parser *Parser) Statement(keyword string) (Stmt, error) {
	var stmt Stmt
	var err error
	switch keyword {
	case "REM":
		// the remark is never tokenized
		return NewRemStmt(), nil
	case "LET":
		stmt, err = parser.letStmt()
	case "PRINT":
		stmt, err = parser.printStmt()
	case "INPUT":
		stmt, err = parser.inputStmt()
	case "END":
		stmt = NewEndStmt()
	case "GOTO":
		stmt, err = parser.gotoStmt()
	case "IF":
		stmt, err = parser.ifStmt()
	default:
		return nil, NewError(SyntaxError)
	}
	if err != nil {
		return nil, err
	}
	if err := parser.end(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// letStmt --> "LET" IDENT "=" expression ;
func (parser *Parser) letStmt() (Stmt, error) {
	name, err := parser.variable()
	if err != nil {
		return nil, err
	}
	if !parser.match("=") {
		return nil, parser.syntaxError()
	}
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewLetStmt(name, expr), nil
}

// printStmt --> "PRINT" expression ;
func (parser *Parser) printStmt() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewPrintStmt(expr), nil
}

// inputStmt --> "INPUT" IDENT ;
func (parser *Parser) inputStmt() (Stmt, error) {
	name, err := parser.variable()
	if err != nil {
		return nil, err
	}
	return NewInputStmt(name), nil
}

// gotoStmt --> "GOTO" NUMBER ;
func (parser *Parser) gotoStmt() (Stmt, error) {
	target, err := parser.lineNumber()
	if err != nil {
		return nil, err
	}
	return NewGotoStmt(target), nil
}

// ifStmt --> "IF" term ( "=" | "<" | ">" ) term "THEN" NUMBER ;
//
// Both sides are parsed without assignment so that "=" is read as the
// comparison.
func (parser *Parser) ifStmt() (Stmt, error) {
	lhs, err := parser.term()
	if err != nil {
		return nil, err
	}
	op, err := parser.next()
	if err != nil {
		return nil, err
	}
	if _, ok := comparisonOps[op.Lexeme]; !ok || op.Type != scanner.OPERATOR {
		return nil, NewError(SyntaxError)
	}
	rhs, err := parser.term()
	if err != nil {
		return nil, err
	}
	if err := parser.verify("THEN"); err != nil {
		return nil, err
	}
	target, err := parser.lineNumber()
	if err != nil {
		return nil, err
	}
	return NewIfStmt(lhs, op.Lexeme, rhs, target), nil
}

// expression --> assign ;
func (parser *Parser) expression() (Expr, error) {
	return parser.assign()
}

// Assignment is right-associative: "A = B = 1" assigns 1 to B, then to A.
//
// The target must be a bare identifier, "(X) = 1" is rejected.
//
// assign --> term ( "=" assign )? ;
func (parser *Parser) assign() (Expr, error) {
	grouped, err := parser.check("(")
	if err != nil {
		return nil, err
	}
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	if parser.match("=") {
		if _, ok := expr.(*IdentifierExpr); !ok || grouped {
			return nil, NewError(IllegalAssignmentTarget)
		}
		value, err := parser.assign()
		if err != nil {
			return nil, err
		}
		return NewCompoundExpr("=", expr, value), nil
	}
	return expr, nil
}

// term --> factor ( ( "+" | "-" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := parser.matchAny("+", "-")
		if !ok {
			return expr, nil
		}
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewCompoundExpr(op, expr, right)
	}
}

// factor --> unary ( ( "*" | "/" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := parser.matchAny("*", "/")
		if !ok {
			return expr, nil
		}
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		expr = NewCompoundExpr(op, expr, right)
	}
}

// A negated literal becomes a negative constant so that the most negative
// value can be written. Other negations are subtractions from zero.
//
// unary --> "-" NUMBER | "-" unary | primary ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match("-") {
		tok, err := parser.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == scanner.NUMBER {
			return constant("-" + tok.Lexeme)
		}
		parser.scanner.Save(tok)
		expr, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewCompoundExpr("-", NewConstantExpr(0), expr), nil
	}
	return parser.primary()
}

// primary --> NUMBER | IDENT | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	tok, err := parser.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case scanner.NUMBER:
		return constant(tok.Lexeme)
	case scanner.WORD:
		if IsReserved(tok.Lexeme) {
			return nil, NewError(SyntaxError)
		}
		return NewIdentifierExpr(tok.Lexeme), nil
	case scanner.OPERATOR:
		if tok.Lexeme != "(" {
			break
		}
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if !parser.match(")") {
			return nil, parser.syntaxError()
		}
		return expr, nil
	}
	return nil, NewError(SyntaxError)
}

func constant(lexeme string) (Expr, error) {
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, wrapError(SyntaxError, err)
	}
	return NewConstantExpr(value), nil
}

// variable reads a name that may be assigned to.
func (parser *Parser) variable() (string, error) {
	tok, err := parser.next()
	if err != nil {
		return "", err
	}
	if tok.Type != scanner.WORD || IsReserved(tok.Lexeme) {
		return "", NewError(SyntaxError)
	}
	return tok.Lexeme, nil
}

func (parser *Parser) lineNumber() (int, error) {
	tok, err := parser.next()
	if err != nil {
		return 0, err
	}
	return parseLineNumber(tok)
}

// parseLineNumber accepts positive decimal integers that fit an int.
func parseLineNumber(tok *scanner.Token) (int, error) {
	if tok.Type != scanner.NUMBER {
		return 0, NewError(SyntaxError)
	}
	n, err := strconv.Atoi(tok.Lexeme)
	if err != nil {
		return 0, wrapError(SyntaxError, err)
	}
	if n <= 0 {
		return 0, NewError(SyntaxError)
	}
	return n, nil
}

// end fails unless the input is exhausted.
func (parser *Parser) end() error {
	tok, err := parser.next()
	if err != nil {
		return err
	}
	if tok.Type != scanner.END {
		return NewError(SyntaxError)
	}
	return nil
}

// check reports whether the next token is the given operator without
// consuming it.
func (parser *Parser) check(op string) (bool, error) {
	tok, err := parser.next()
	if err != nil {
		return false, err
	}
	parser.scanner.Save(tok)
	return tok.Type == scanner.OPERATOR && tok.Lexeme == op, nil
}

// match consumes the next token if it is the given operator.
func (parser *Parser) match(op string) bool {
	_, ok := parser.matchAny(op)
	return ok
}

func (parser *Parser) matchAny(ops ...string) (string, bool) {
	if parser.err != nil {
		return "", false
	}
	tok, err := parser.scanner.Next()
	if err != nil {
		parser.err = parser.scanError(err)
		return "", false
	}
	if tok.Type == scanner.OPERATOR {
		for _, op := range ops {
			if tok.Lexeme == op {
				return op, true
			}
		}
	}
	parser.scanner.Save(tok)
	return "", false
}

// syntaxError prefers a pending scanning failure over a generic syntax error.
func (parser *Parser) syntaxError() error {
	if parser.err != nil {
		return parser.err
	}
	return NewError(SyntaxError)
}

func (parser *Parser) verify(lexeme string) error {
	if parser.err != nil {
		return parser.err
	}
	if err := parser.scanner.Verify(lexeme); err != nil {
		return parser.scanError(err)
	}
	return nil
}

func (parser *Parser) next() (*scanner.Token, error) {
	if parser.err != nil {
		return nil, parser.err
	}
	tok, err := parser.scanner.Next()
	if err != nil {
		return nil, parser.scanError(err)
	}
	return tok, nil
}

func (parser *Parser) scanError(err error) error {
	if errors.Is(err, scanner.ErrUnterminatedString) {
		return wrapError(UnterminatedString, err)
	}
	return wrapError(SyntaxError, err)
}
