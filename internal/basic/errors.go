package basic

import "errors"

// ErrQuit is returned by ProcessLine when the user asks to leave the
// interpreter with an immediate END or QUIT.
var ErrQuit = errors.New("quit")

// ErrorKind enumerates the failures the interpreter reports to the user.
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	UndefinedVariable
	DivideByZero
	LineNumberError
	UnterminatedString
	IllegalAssignmentTarget
)

func (kind ErrorKind) String() string {
	switch kind {
	case SyntaxError:
		return "SYNTAX ERROR"
	case UndefinedVariable:
		return "VARIABLE NOT DEFINED"
	case DivideByZero:
		return "DIVIDE BY ZERO"
	case LineNumberError:
		return "LINE NUMBER ERROR"
	case UnterminatedString:
		return "UNTERMINATED STRING"
	case IllegalAssignmentTarget:
		return "ILLEGAL VARIABLE IN ASSIGNMENT"
	}
	return "UNKNOWN ERROR"
}

// Sentinels for use with errors.Is. Any *Error of the same kind matches.
var (
	ErrSyntax            = &Error{Kind: SyntaxError}
	ErrUndefinedVariable = &Error{Kind: UndefinedVariable}
	ErrDivideByZero      = &Error{Kind: DivideByZero}
	ErrLineNumber        = &Error{Kind: LineNumberError}
	ErrUnterminated      = &Error{Kind: UnterminatedString}
	ErrIllegalAssignment = &Error{Kind: IllegalAssignmentTarget}
)

// Error is the error type produced while parsing or executing BASIC. Line is
// set when the error was raised by a stored line during RUN; the message
// itself never shows it.
type Error struct {
	Kind ErrorKind
	Line int
	Err  error
}

// NewError creates an error of the given kind
func NewError(kind ErrorKind) error {
	return &Error{Kind: kind}
}

func wrapError(kind ErrorKind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}

func (err *Error) Error() string {
	return err.Kind.String()
}

func (err *Error) Unwrap() error {
	return err.Err
}

func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// isRuntime reports whether the error was raised while executing. A bad
// assignment target is caught by the parser, so it counts as a syntax
// problem.
func (err *Error) isRuntime() bool {
	switch err.Kind {
	case UndefinedVariable, DivideByZero, LineNumberError:
		return true
	}
	return false
}

// atLine attaches a line number to an interpreter error; other errors are
// returned untouched.
func atLine(err error, line int) error {
	var basicErr *Error
	if !errors.As(err, &basicErr) {
		return err
	}
	withLine := *basicErr
	withLine.Line = line
	return &withLine
}
