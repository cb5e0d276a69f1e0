/*
Package basic implements a line-numbered BASIC interpreter with integer
variables.

Grammars

	line       --> NUMBER stmt
	             | NUMBER
	             | command
	             | stmt ;
	command    --> "RUN" | "LIST" | "CLEAR" | "QUIT" | "HELP" ;
	stmt       --> "REM" anything
	             | "LET" IDENT "=" expr
	             | "PRINT" expr
	             | "INPUT" IDENT
	             | "END"
	             | "GOTO" NUMBER
	             | "IF" term ( "=" | "<" | ">" ) term "THEN" NUMBER ;
	expr       --> assign ;
	assign     --> term ( "=" assign )? ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> "-" NUMBER
	             | "-" unary
	             | primary ;
	primary    --> NUMBER | IDENT | "(" expr ")" ;

The left side of "=" must be a bare identifier. Keywords are upper case and
cannot be used as variable names. Values are signed 64-bit integers:
addition, subtraction and multiplication wrap around on overflow and division
truncates toward zero. A minus sign directly before a literal is part of the
constant, so -9223372036854775808 can be written.

A line without a number runs immediately and is then discarded, except that
GOTO and IF are only allowed in numbered lines and END leaves the
interpreter. Numbered lines are run by RUN in ascending order, and any error
aborts the run.
*/
package basic
