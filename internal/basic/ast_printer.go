package basic

import (
	"fmt"
	"strconv"
)

// AstPrinter renders expressions and statements in a canonical, fully
// parenthesized form. It is used for execution traces.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	s, _ := stmt.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitConstantExpr(expr *ConstantExpr) (interface{}, error) {
	return strconv.FormatInt(expr.Value, 10), nil
}

func (printer *AstPrinter) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	return expr.Name, nil
}

func (printer *AstPrinter) VisitCompoundExpr(expr *CompoundExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s %s)", printer.Print(expr.Lhs), expr.Op, printer.Print(expr.Rhs)), nil
}

func (printer *AstPrinter) VisitRemStmt(stmt *RemStmt) (interface{}, error) {
	return "REM", nil
}

func (printer *AstPrinter) VisitLetStmt(stmt *LetStmt) (interface{}, error) {
	return fmt.Sprintf("LET %s = %s", stmt.Name, printer.Print(stmt.Expr)), nil
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return "PRINT " + printer.Print(stmt.Expr), nil
}

func (printer *AstPrinter) VisitInputStmt(stmt *InputStmt) (interface{}, error) {
	return "INPUT " + stmt.Name, nil
}

func (printer *AstPrinter) VisitEndStmt(stmt *EndStmt) (interface{}, error) {
	return "END", nil
}

func (printer *AstPrinter) VisitGotoStmt(stmt *GotoStmt) (interface{}, error) {
	return fmt.Sprintf("GOTO %d", stmt.Target), nil
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	return fmt.Sprintf(
		"IF %s %s %s THEN %d",
		printer.Print(stmt.Lhs),
		stmt.Op,
		printer.Print(stmt.Rhs),
		stmt.Target,
	), nil
}
