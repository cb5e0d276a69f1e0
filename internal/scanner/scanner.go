package scanner

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnterminatedString is returned when the input ends before the closing
// delimiter of a quoted string.
var ErrUnterminatedString = errors.New("unterminated string")

// Error wraps a scanning failure with the position where the offending token
// started.
type Error struct {
	Pos int
	Err error
}

func (err *Error) Error() string {
	return fmt.Sprintf("[pos %d] Error: %v", err.Pos, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Options configures how a Scanner splits its input. Options are fixed once
// the scanner is created.
type Options struct {
	// SkipWhitespace drops whitespace instead of returning it as SEPARATOR
	// tokens.
	SkipWhitespace bool
	// SkipComments drops "//" line comments and "/* */" block comments.
	SkipComments bool
	// ScanNumbers reads numeric literals as a single NUMBER token.
	ScanNumbers bool
	// ScanStrings reads quoted strings as a single STRING token.
	ScanStrings bool
	// Operators lists the multi-character operators to recognize.
	Operators []string
	// WordChars lists the characters, besides letters and digits, that may
	// appear in a WORD.
	WordChars string
}

type numberState int

const (
	beforeDecimalPoint numberState = iota
	afterDecimalPoint
	startingExponent
	foundExponentSign
	scanningExponent
	finalState
)

// Scanner splits a line of text into tokens lazily, one call to Next at a
// time.
type Scanner struct {
	start   int
	current int
	source  []rune
	saved   []*Token

	opts      Options
	operators map[string]struct{}
	prefixes  map[string]struct{}
	wordChars map[rune]struct{}
}

// New creates a scanner with the given options and an empty input.
func New(opts Options) *Scanner {
	scanner := new(Scanner)
	scanner.opts = opts
	scanner.operators = make(map[string]struct{}, len(opts.Operators))
	scanner.prefixes = make(map[string]struct{})
	for _, op := range opts.Operators {
		scanner.operators[op] = struct{}{}
		runes := []rune(op)
		for i := 1; i <= len(runes); i++ {
			scanner.prefixes[string(runes[:i])] = struct{}{}
		}
	}
	scanner.wordChars = make(map[rune]struct{}, len(opts.WordChars))
	for _, r := range opts.WordChars {
		scanner.wordChars[r] = struct{}{}
	}
	return scanner
}

// SetInput replaces the scanner's input and forgets every saved token.
func (scanner *Scanner) SetInput(source string) {
	scanner.start = 0
	scanner.current = 0
	scanner.source = []rune(source)
	scanner.saved = nil
}

// HasMoreTokens reports whether a token other than END remains, without
// consuming it.
func (scanner *Scanner) HasMoreTokens() (bool, error) {
	tok, err := scanner.Next()
	if err != nil {
		return false, err
	}
	scanner.Save(tok)
	return tok.Type != END, nil
}

// Save pushes a token back so that the next call to Next returns it. Saved
// tokens are returned last-in first-out.
func (scanner *Scanner) Save(tok *Token) {
	scanner.saved = append(scanner.saved, tok)
}

// Verify reads the next token and fails if its lexeme is not the expected
// one.
func (scanner *Scanner) Verify(expected string) error {
	tok, err := scanner.Next()
	if err != nil {
		return err
	}
	if tok.Lexeme != expected {
		return &Error{tok.Pos, fmt.Errorf("found %q when expecting %q", tok.Lexeme, expected)}
	}
	return nil
}

// Next returns the next token of the input. Once the input is exhausted it
// keeps returning END tokens.
func (scanner *Scanner) Next() (*Token, error) {
	if n := len(scanner.saved); n > 0 {
		tok := scanner.saved[n-1]
		scanner.saved = scanner.saved[:n-1]
		return tok, nil
	}

	for {
		if scanner.opts.SkipWhitespace {
			scanner.skipSpaces()
		}
		scanner.start = scanner.current
		if !scanner.hasNext() {
			return NewToken(END, "", nil, scanner.start), nil
		}

		r := scanner.advance()
		if r == '/' && scanner.opts.SkipComments {
			if scanner.match('/') {
				scanner.skipLineComment()
				continue
			}
			if scanner.match('*') {
				scanner.skipBlockComment()
				continue
			}
		}

		switch {
		case (r == '"' || r == '\'') && scanner.opts.ScanStrings:
			return scanner.scanString(r)
		case unicode.IsDigit(r) && scanner.opts.ScanNumbers:
			scanner.scanNumber()
		case scanner.isWordChar(r):
			scanner.scanWord()
		default:
			scanner.scanOperator()
		}
		lexeme := scanner.lexeme()
		return NewToken(scanner.TypeOf(lexeme), lexeme, nil, scanner.start), nil
	}
}

// TypeOf classifies the given text the way this scanner would classify a
// token that starts with the same character.
func (scanner *Scanner) TypeOf(lexeme string) TokenType {
	if lexeme == "" {
		return END
	}
	runes := []rune(lexeme)
	r := runes[0]
	switch {
	case unicode.IsSpace(r):
		return SEPARATOR
	case r == '"' || (r == '\'' && len(runes) > 1):
		return STRING
	case unicode.IsDigit(r):
		return NUMBER
	case scanner.isWordChar(r):
		return WORD
	}
	return OPERATOR
}

// scanString reads a quoted string whose opening delimiter was consumed. The
// lexeme keeps both delimiters and the escapes as written; the literal holds
// the decoded text.
func (scanner *Scanner) scanString(delim rune) (*Token, error) {
	escape := false
	for {
		if !scanner.hasNext() {
			return nil, &Error{scanner.start, ErrUnterminatedString}
		}
		r := scanner.advance()
		if r == delim && !escape {
			break
		}
		escape = r == '\\' && !escape
	}
	lexeme := scanner.lexeme()
	return NewToken(STRING, lexeme, Unquote(lexeme), scanner.start), nil
}

// scanNumber runs the numeric literal state machine. The first digit has
// already been consumed. An exponent marker that is not followed by a valid
// exponent is left in the input.
func (scanner *Scanner) scanNumber() {
	state := beforeDecimalPoint
	for state != finalState {
		r := scanner.peek()
		switch state {
		case beforeDecimalPoint:
			switch {
			case r == '.':
				state = afterDecimalPoint
			case r == 'E' || r == 'e':
				state = startingExponent
			case !unicode.IsDigit(r):
				state = finalState
			}
		case afterDecimalPoint:
			switch {
			case r == 'E' || r == 'e':
				state = startingExponent
			case !unicode.IsDigit(r):
				state = finalState
			}
		case startingExponent:
			switch {
			case r == '+' || r == '-':
				state = foundExponentSign
			case unicode.IsDigit(r):
				state = scanningExponent
			default:
				scanner.current--
				state = finalState
			}
		case foundExponentSign:
			if unicode.IsDigit(r) {
				state = scanningExponent
			} else {
				scanner.current -= 2
				state = finalState
			}
		case scanningExponent:
			if !unicode.IsDigit(r) {
				state = finalState
			}
		}
		if state != finalState {
			scanner.current++
		}
	}
}

func (scanner *Scanner) scanWord() {
	for scanner.hasNext() && scanner.isWordChar(scanner.peek()) {
		scanner.advance()
	}
}

// scanOperator extends the candidate while it is a prefix of a registered
// operator, then backs off to the longest registered one. A single character
// is always a token.
func (scanner *Scanner) scanOperator() {
	for scanner.hasNext() && scanner.isOperatorPrefix(scanner.lexeme()) {
		scanner.advance()
	}
	for scanner.current-scanner.start > 1 && !scanner.isOperator(scanner.lexeme()) {
		scanner.current--
	}
}

func (scanner *Scanner) skipSpaces() {
	for scanner.hasNext() && unicode.IsSpace(scanner.peek()) {
		scanner.advance()
	}
}

func (scanner *Scanner) skipLineComment() {
	for scanner.hasNext() {
		if r := scanner.advance(); r == '\n' || r == '\r' {
			return
		}
	}
}

// skipBlockComment consumes everything up to and including "*/". An
// unterminated comment runs to the end of the input.
func (scanner *Scanner) skipBlockComment() {
	prev := '\x00'
	for scanner.hasNext() {
		r := scanner.advance()
		if prev == '*' && r == '/' {
			return
		}
		prev = r
	}
}

func (scanner *Scanner) isOperator(op string) bool {
	_, ok := scanner.operators[op]
	return ok
}

func (scanner *Scanner) isOperatorPrefix(op string) bool {
	_, ok := scanner.prefixes[op]
	return ok
}

func (scanner *Scanner) isWordChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	_, ok := scanner.wordChars[r]
	return ok
}

func (scanner *Scanner) lexeme() string {
	return string(scanner.source[scanner.start:scanner.current])
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match consumes the rune at the current position if it equals the expected
// one.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() || scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// Unquote decodes a string lexeme. Surrounding quotes are removed when
// present, and backslash escapes are replaced by the characters they stand
// for: the C single-character escapes, up to three octal digits, or "\x"
// followed by up to two hex digits.
func Unquote(lexeme string) string {
	runes := []rune(lexeme)
	start, finish := 0, len(runes)
	if finish > 1 && (runes[0] == '"' || runes[0] == '\'') {
		start = 1
		finish--
	}

	var sb strings.Builder
	for i := start; i < finish; i++ {
		r := runes[i]
		if r != '\\' || i+1 >= finish {
			sb.WriteRune(r)
			continue
		}
		i++
		r = runes[i]
		switch {
		case r >= '0' && r <= '7':
			value, n := readDigits(runes[i:finish], 8, 3)
			sb.WriteRune(rune(value))
			i += n - 1
		case r == 'x':
			value, n := readDigits(runes[i+1:finish], 16, 2)
			if n == 0 {
				sb.WriteRune('x')
				continue
			}
			sb.WriteRune(rune(value))
			i += n
		default:
			sb.WriteRune(escapeChar(r))
		}
	}
	return sb.String()
}

func readDigits(runes []rune, base, max int) (int, int) {
	value, n := 0, 0
	for n < len(runes) && n < max {
		digit := digitValue(runes[n])
		if digit >= base {
			break
		}
		value = value*base + digit
		n++
	}
	return value, n
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 16
}

func escapeChar(r rune) rune {
	switch r {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	}
	// \\, \", \' and unknown escapes stand for the character itself
	return r
}
