package basic

import (
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(input string) (*Interpreter, *strings.Builder) {
	var out strings.Builder
	return NewInterpreter(strings.NewReader(input), &out, DefaultConfig()), &out
}

func processLines(t *testing.T, in *Interpreter, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, in.ProcessLine(line), line)
	}
}

func TestInterpretExpression(t *testing.T) {
	testCases := []struct {
		src  string
		eval int64
	}{
		{"3 + 4 * 2", 11},
		{"(3 + 4) * 2", 14},
		{"10 - 2 - 3", 5},
		{"-5 + 2", -3},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"7 / -2", -3},
		{"X * 2", 10},
		{"9223372036854775807 + 1", -9223372036854775808},
		{"-9223372036854775807 - 2", 9223372036854775807},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		in, _ := newTestInterpreter("")
		in.Environment().Set("X", 5)
		expr, err := parseExpr(tc.src)
		if !assert.NoError(err, tc.src) {
			continue
		}
		value, err := in.Eval(expr)
		assert.NoError(err, tc.src)
		assert.Equal(tc.eval, value, tc.src)
	}
}

func TestInterpretConstantRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for _, n := range []int64{0, 1, 42, 65535, 2147483648, 9223372036854775807} {
		src := strconv.FormatInt(n, 10)
		expr, err := parseExpr(src)
		if !assert.NoError(err, src) {
			continue
		}
		in, _ := newTestInterpreter("")
		value, err := in.Eval(expr)
		assert.NoError(err, src)
		assert.Equal(n, value, src)
	}
}

func TestInterpretAssignmentChain(t *testing.T) {
	assert := assert.New(t)
	in, out := newTestInterpreter("")

	assert.NoError(in.ProcessLine("PRINT A = B = 3"))
	assert.Equal("3\n", out.String())

	a, err := in.Environment().Get("A")
	assert.NoError(err)
	assert.Equal(int64(3), a)
	b, err := in.Environment().Get("B")
	assert.NoError(err)
	assert.Equal(int64(3), b)

	assert.NoError(in.ProcessLine("LET X = (Y = 2) + 1"))
	x, _ := in.Environment().Get("X")
	y, _ := in.Environment().Get("Y")
	assert.Equal(int64(3), x)
	assert.Equal(int64(2), y)
}

func TestInterpretAssignToNonIdentifier(t *testing.T) {
	assert := assert.New(t)
	in, _ := newTestInterpreter("")

	_, err := in.Eval(NewCompoundExpr("=", NewConstantExpr(1), NewConstantExpr(2)))
	assert.ErrorIs(err, ErrIllegalAssignment)

	_, err = in.Eval(NewCompoundExpr("=", NewIdentifierExpr("PRINT"), NewConstantExpr(2)))
	assert.ErrorIs(err, ErrSyntax)
	assert.Equal(0, in.Environment().Len())
}

func TestInterpretRuntimeErrorsLeaveVariablesUnchanged(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"LET X = 1 / 0", ErrDivideByZero},
		{"LET X = Y + 1", ErrUndefinedVariable},
		{"PRINT X = 1 / (2 - 2)", ErrDivideByZero},
		{"LET LET = 5", ErrSyntax},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		in, out := newTestInterpreter("")
		err := in.ProcessLine(tc.src)
		assert.ErrorIs(err, tc.err, tc.src)
		assert.Equal(0, in.Environment().Len(), tc.src)
		assert.Empty(out.String(), tc.src)
	}
}

func TestInterpretDivisionByZeroMessage(t *testing.T) {
	in, _ := newTestInterpreter("")
	err := in.ProcessLine("PRINT 1 / 0")
	assert.EqualError(t, err, "DIVIDE BY ZERO")
}

func TestRunProgram(t *testing.T) {
	testCases := []struct {
		lines []string
		out   string
	}{
		{
			[]string{"10 LET X = 5", "20 PRINT X * 2", "30 END"},
			"10\n",
		},
		{
			[]string{"10 LET X = 1", "20 IF X = 1 THEN 40", "30 PRINT 0", "40 PRINT X"},
			"1\n",
		},
		{
			[]string{"10 LET I = 0", "20 LET I = I + 1", "30 PRINT I", "40 IF I < 3 THEN 20"},
			"1\n2\n3\n",
		},
		{
			[]string{"20 PRINT 2", "10 PRINT 1", "30 PRINT 3"},
			"1\n2\n3\n",
		},
		{
			[]string{"10 PRINT 1", "20 END", "30 PRINT 2"},
			"1\n",
		},
		{
			[]string{"10 IF 1 < 2 THEN 30", "20 PRINT 999", "30 PRINT 1"},
			"1\n",
		},
		{
			[]string{"10 GOTO 30", "20 PRINT 1", "30 PRINT 2"},
			"2\n",
		},
		{
			[]string{"10 IF 1 > 2 THEN 99", "20 PRINT 5"},
			"5\n",
		},
		{
			[]string{"10 REM count down", "20 LET N = 3", "30 PRINT N", "40 LET N = N - 1", "50 IF N > 0 THEN 30"},
			"3\n2\n1\n",
		},
		{
			[]string{},
			"",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		in, out := newTestInterpreter("")
		processLines(t, in, tc.lines...)
		assert.NoError(in.ProcessLine("RUN"), tc.lines)
		assert.Equal(tc.out, out.String(), tc.lines)
	}
}

func TestRunKeepsVariables(t *testing.T) {
	assert := assert.New(t)
	in, out := newTestInterpreter("")
	processLines(t, in, "10 LET X = X + 1", "LET X = 41", "RUN", "PRINT X")
	assert.Equal("42\n", out.String())
}

func TestRunStopsAtFirstError(t *testing.T) {
	testCases := []struct {
		lines []string
		out   string
		err   error
		msg   string
		line  int
	}{
		{
			[]string{"10 PRINT 1", "20 PRINT 1 / 0", "30 PRINT 3"},
			"1\n", ErrDivideByZero, "DIVIDE BY ZERO", 20,
		},
		{
			[]string{"10 GOTO 100", "20 PRINT 1"},
			"", ErrLineNumber, "LINE NUMBER ERROR", 10,
		},
		{
			[]string{"10 LET X = 1", "20 IF X = 1 THEN 25", "30 PRINT X"},
			"", ErrLineNumber, "LINE NUMBER ERROR", 20,
		},
		{
			[]string{"10 PRINT 7", "20 PRINT Z"},
			"7\n", ErrUndefinedVariable, "VARIABLE NOT DEFINED", 20,
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		in, out := newTestInterpreter("")
		processLines(t, in, tc.lines...)
		err := in.ProcessLine("RUN")
		assert.ErrorIs(err, tc.err, tc.lines)
		assert.EqualError(err, tc.msg, tc.lines)
		assert.Equal(tc.out, out.String(), tc.lines)

		var basicErr *Error
		if assert.ErrorAs(err, &basicErr, tc.lines) {
			assert.Equal(tc.line, basicErr.Line, tc.lines)
		}
	}
}

func TestPrintMostNegativeValue(t *testing.T) {
	assert := assert.New(t)
	in, out := newTestInterpreter("")

	processLines(t, in, "PRINT -9223372036854775808", "LET X = -9223372036854775808 - 1", "PRINT X")
	assert.Equal("-9223372036854775808\n9223372036854775807\n", out.String())
}

func TestAssignToParenthesizedVariable(t *testing.T) {
	assert := assert.New(t)
	in, out := newTestInterpreter("")

	assert.ErrorIs(in.ProcessLine("PRINT (X) = 3"), ErrIllegalAssignment)
	assert.ErrorIs(in.ProcessLine("10 LET Y = (X) = 3"), ErrIllegalAssignment)
	assert.Equal(0, in.Environment().Len())
	assert.Equal(0, in.Program().Len())
	assert.Empty(out.String())
}

func TestRunTrace(t *testing.T) {
	assert := assert.New(t)
	in, out := newTestInterpreter("")
	var trace strings.Builder
	in.SetTrace(&trace)

	processLines(t, in, "10 LET X = 1 + 2", "20 IF X > 2 THEN 40", "30 PRINT 0", "40 PRINT -X", "RUN")
	assert.Equal("-3\n", out.String())
	assert.Equal(
		"[10] LET X = (1 + 2)\n[20] IF X > 2 THEN 40\n[40] PRINT (0 - X)\n",
		trace.String(),
	)

	in.SetTrace(nil)
	trace.Reset()
	processLines(t, in, "RUN")
	assert.Empty(trace.String())
}

func TestInputStatement(t *testing.T) {
	testCases := []struct {
		input string
		value int64
		out   string
	}{
		{"42\n", 42, " ? "},
		{"  -7  \n", -7, " ? "},
		{"+3\n", 3, " ? "},
		{"15", 15, " ? "},
		{"abc\n\n1.5\n8\n", 8, " ? INVALID NUMBER\n ? INVALID NUMBER\n ? INVALID NUMBER\n ? "},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		in, out := newTestInterpreter(tc.input)
		if assert.NoError(in.ProcessLine("INPUT N"), tc.input) {
			value, err := in.Environment().Get("N")
			assert.NoError(err)
			assert.Equal(tc.value, value, tc.input)
		}
		assert.Equal(tc.out, out.String(), tc.input)
	}
}

func TestInputStatementEndOfInput(t *testing.T) {
	assert := assert.New(t)
	in, out := newTestInterpreter("oops\n")
	err := in.ProcessLine("INPUT N")
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
	assert.False(in.Environment().IsDefined("N"))
	assert.Equal(" ? INVALID NUMBER\n ? ", out.String())
}

func TestInputStatementInProgram(t *testing.T) {
	assert := assert.New(t)
	in, out := newTestInterpreter("4\n5\n")
	processLines(t, in, "10 INPUT A", "20 INPUT B", "30 PRINT A * B", "RUN")
	assert.Equal(" ?  ? 20\n", out.String())
}

func TestInputPromptFromConfig(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	config := DefaultConfig()
	config.InputPrompt = "? "
	config.InvalidNumber = "TRY AGAIN"
	in := NewInterpreter(strings.NewReader("x\n2\n"), &out, config)

	assert.NoError(in.ProcessLine("INPUT N"))
	assert.Equal("? TRY AGAIN\n? ", out.String())
}
