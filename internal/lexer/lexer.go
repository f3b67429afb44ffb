// Package lexer turns JSON text into a stream of tokens.
//
// Tokens are produced lazily, one per call to Next. The lexer keeps only its
// cursor and the line/column of that cursor, so it can be rewound with Reset
// and scanned again without reallocating.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Lexer scans a single input buffer.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Reset rewinds the cursor to the start of the input.
func (l *Lexer) Reset() {
	l.pos = 0
	l.line = 1
	l.column = 1
}

// Line reports the 1-based line of the cursor.
func (l *Lexer) Line() int {
	return l.line
}

// Column reports the 1-based column of the cursor, counted in runes.
func (l *Lexer) Column() int {
	return l.column
}

// Next returns the token at the cursor and advances past it. Once the input
// is exhausted every call returns an End token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	line, column := l.line, l.column
	if l.pos >= len(l.input) {
		return Token{Kind: End, Line: line, Column: column}, nil
	}

	punct := Kind(-1)
	switch l.input[l.pos] {
	case '{':
		punct = LeftBrace
	case '}':
		punct = RightBrace
	case '[':
		punct = LeftBracket
	case ']':
		punct = RightBracket
	case ',':
		punct = Comma
	case ':':
		punct = Colon
	case '"':
		literal, err := l.lexString()
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: String, Literal: literal, Line: line, Column: column}, nil
	case 't':
		return l.lexKeyword("true", True)
	case 'f':
		return l.lexKeyword("false", False)
	case 'n':
		return l.lexKeyword("null", Null)
	}

	if punct >= 0 {
		l.bump()
		return Token{Kind: punct, Line: line, Column: column}, nil
	}

	if isNumberStart(l.input[l.pos]) {
		literal, err := l.lexNumber()
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: Number, Literal: literal, Line: line, Column: column}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return Token{}, lexicalError(line, column, "unexpected character %q", r)
}

// bump consumes one rune and keeps line/column in step.
func (l *Lexer) bump() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.bump()
		default:
			return
		}
	}
}

func (l *Lexer) lexKeyword(keyword string, kind Kind) (Token, error) {
	line, column := l.line, l.column
	if !strings.HasPrefix(l.input[l.pos:], keyword) {
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return Token{}, lexicalError(line, column, "unexpected character %q", r)
	}
	for range keyword {
		l.bump()
	}
	return Token{Kind: kind, Line: line, Column: column}, nil
}

func isNumberStart(c byte) bool {
	return c == '-' || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) peekDigit() bool {
	return l.pos < len(l.input) && isDigit(l.input[l.pos])
}

func (l *Lexer) skipDigits() int {
	n := 0
	for l.peekDigit() {
		l.bump()
		n++
	}
	return n
}

// lexNumber consumes -? (0 | [1-9][0-9]*) (\.[0-9]+)? ([eE][+-]?[0-9]+)?
func (l *Lexer) lexNumber() (string, error) {
	start := l.pos
	line, column := l.line, l.column

	if l.input[l.pos] == '-' {
		l.bump()
	}
	if !l.peekDigit() {
		return "", lexicalError(line, column, "invalid number %q", l.input[start:l.pos])
	}
	if l.input[l.pos] == '0' {
		l.bump()
	} else {
		l.skipDigits()
	}

	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.bump()
		if l.skipDigits() == 0 {
			return "", lexicalError(line, column, "invalid number %q: missing fraction digits", l.input[start:l.pos])
		}
	}

	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		l.bump()
		if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
			l.bump()
		}
		if l.skipDigits() == 0 {
			return "", lexicalError(line, column, "invalid number %q: missing exponent digits", l.input[start:l.pos])
		}
	}

	return l.input[start:l.pos], nil
}

// lexString consumes a quoted string and returns its decoded content.
func (l *Lexer) lexString() (string, error) {
	line, column := l.line, l.column
	l.bump()

	var b strings.Builder
	for {
		if l.pos >= len(l.input) {
			return "", lexicalError(line, column, "unterminated string")
		}

		c := l.input[l.pos]
		switch {
		case c == '"':
			l.bump()
			return b.String(), nil
		case c == '\\':
			if err := l.lexEscape(&b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", lexicalError(l.line, l.column, "control character %q in string", c)
		default:
			b.WriteRune(l.bump())
		}
	}
}

func (l *Lexer) lexEscape(b *strings.Builder) error {
	line, column := l.line, l.column
	l.bump()
	if l.pos >= len(l.input) {
		return lexicalError(line, column, "unterminated string")
	}

	c := l.input[l.pos]
	l.bump()
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := l.lexHex4(line, column)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) && strings.HasPrefix(l.input[l.pos:], `\u`) {
			save := *l
			l.bump()
			l.bump()
			low, err := l.lexHex4(line, column)
			if err == nil {
				if decoded := utf16.DecodeRune(r, low); decoded != utf8.RuneError {
					b.WriteRune(decoded)
					return nil
				}
			}
			*l = save
		}
		b.WriteRune(r)
	default:
		return lexicalError(line, column, "invalid escape sequence \\%c", c)
	}
	return nil
}

func (l *Lexer) lexHex4(line, column int) (rune, error) {
	if l.pos+4 > len(l.input) {
		return 0, lexicalError(line, column, "truncated unicode escape")
	}
	digits := l.input[l.pos : l.pos+4]
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, lexicalError(line, column, "invalid unicode escape \\u%s", digits)
	}
	for range 4 {
		l.bump()
	}
	return rune(n), nil
}
