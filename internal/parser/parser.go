// Package parser builds value trees from JSON text.
//
// The grammar is LL(1): the kind of the current token always decides which
// production applies. Build materializes a tree; Check runs the same grammar
// over a freshly reset lexer without building anything.
package parser

import (
	"errors"
	"fmt"

	"github.com/jacoelho/jed/internal/lexer"
	"github.com/jacoelho/jed/internal/number"
	"github.com/jacoelho/jed/internal/value"
)

// ErrSyntax indicates a token of the wrong kind for the current production,
// or input left over after a complete value.
var ErrSyntax = errors.New("syntax error")

// invalid marks the current token when the lexer failed to produce one. The
// lexical error is reported only if a production needs that token.
const invalid lexer.Kind = -1

// Parser reads a single input. It is not safe for concurrent use.
type Parser struct {
	lexer   *lexer.Lexer
	current lexer.Token
	lexErr  error
}

func New(input string) *Parser {
	return &Parser{lexer: lexer.New(input)}
}

// Parse builds a tree from input and requires that nothing follows the value.
func Parse(input string) (value.Value, error) {
	p := New(input)
	v, err := p.Build()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.End); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate reports whether input is a single well-formed JSON value.
func Validate(input string) bool {
	return New(input).Validate()
}

// Build scans from the start of the input and returns the first value. Input
// after that value is not examined.
func (p *Parser) Build() (value.Value, error) {
	p.reset()
	return p.parseValue()
}

// Check runs the validation pass: the whole input must be exactly one value.
func (p *Parser) Check() error {
	p.reset()
	if err := p.checkValue(); err != nil {
		return err
	}
	return p.expect(lexer.End)
}

// Validate is Check reduced to a boolean.
func (p *Parser) Validate() bool {
	return p.Check() == nil
}

func (p *Parser) reset() {
	p.lexer.Reset()
	p.lexErr = nil
	p.advance()
}

func (p *Parser) advance() {
	tok, err := p.lexer.Next()
	if err != nil {
		p.current = lexer.Token{Kind: invalid, Line: p.lexer.Line(), Column: p.lexer.Column()}
		p.lexErr = err
		return
	}
	p.current = tok
}

// expect fails unless the current token has the given kind. It does not
// consume the token.
func (p *Parser) expect(kind lexer.Kind) error {
	if p.current.Kind != kind {
		return p.syntaxError("expected %v, found %v", kind, p.current.Kind)
	}
	return nil
}

// consume checks the current token kind and advances past it.
func (p *Parser) consume(kind lexer.Kind) error {
	if err := p.expect(kind); err != nil {
		return err
	}
	p.advance()
	return nil
}

func (p *Parser) syntaxError(format string, args ...any) error {
	if p.current.Kind == invalid {
		return p.lexErr
	}
	return &lexer.Error{
		Err:    ErrSyntax,
		Line:   p.current.Line,
		Column: p.current.Column,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (p *Parser) parseValue() (value.Value, error) {
	tok := p.current
	switch tok.Kind {
	case lexer.LeftBrace:
		return p.parseObject()
	case lexer.LeftBracket:
		return p.parseArray()
	case lexer.String:
		p.advance()
		return value.String(tok.Literal), nil
	case lexer.Number:
		f, err := number.Parse(tok.Literal)
		if err != nil {
			return nil, p.syntaxError("%v", err)
		}
		p.advance()
		return value.Number(f), nil
	case lexer.True:
		p.advance()
		return value.Bool(true), nil
	case lexer.False:
		p.advance()
		return value.Bool(false), nil
	case lexer.Null:
		p.advance()
		return value.Null{}, nil
	default:
		return nil, p.syntaxError("unexpected %v", tok.Kind)
	}
}

func (p *Parser) parseObject() (value.Value, error) {
	if err := p.consume(lexer.LeftBrace); err != nil {
		return nil, err
	}

	obj := value.NewObject()
	if p.current.Kind != lexer.RightBrace {
		for {
			if err := p.expect(lexer.String); err != nil {
				return nil, err
			}
			key := p.current.Literal
			p.advance()
			if err := p.consume(lexer.Colon); err != nil {
				return nil, err
			}

			child, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			obj.Append(key, child)

			if p.current.Kind != lexer.Comma {
				break
			}
			p.advance()
		}
	}

	if err := p.consume(lexer.RightBrace); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *Parser) parseArray() (value.Value, error) {
	if err := p.consume(lexer.LeftBracket); err != nil {
		return nil, err
	}

	arr := value.NewArray()
	if p.current.Kind != lexer.RightBracket {
		for {
			child, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			arr.Append(child)

			if p.current.Kind != lexer.Comma {
				break
			}
			p.advance()
		}
	}

	if err := p.consume(lexer.RightBracket); err != nil {
		return nil, err
	}
	return arr, nil
}
