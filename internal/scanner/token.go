package scanner

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Pos     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, pos int) *Token {
	return &Token{typ, lexeme, literal, pos}
}

func (t *Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %q", t.Type.String(), t.Lexeme)
	}
	return fmt.Sprintf("%s %q %v", t.Type.String(), t.Lexeme, t.Literal)
}

const (
	END TokenType = iota
	SEPARATOR
	WORD
	NUMBER
	STRING
	OPERATOR
)

// TokenType classifies a token by its first character.
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case END:
		return "END"
	case SEPARATOR:
		return "SEPARATOR"
	case WORD:
		return "WORD"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case OPERATOR:
		return "OPERATOR"
	}
	return ""
}
