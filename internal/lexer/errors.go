package lexer

import (
	"errors"
	"fmt"
)

// ErrLexical indicates input the lexer cannot turn into a token, such as an
// unrecognized character or an unterminated string.
var ErrLexical = errors.New("lexical error")

// Error is a positioned scan or parse failure. Err is the sentinel describing
// the failure class and is exposed through Unwrap.
type Error struct {
	Err    error
	Line   int
	Column int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at line %d, column %d: %s", e.Err, e.Line, e.Column, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func lexicalError(line, column int, format string, args ...any) error {
	return &Error{
		Err:    ErrLexical,
		Line:   line,
		Column: column,
		Detail: fmt.Sprintf(format, args...),
	}
}
