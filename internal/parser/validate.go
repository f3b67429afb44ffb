package parser

import (
	"github.com/jacoelho/jed/internal/lexer"
	"github.com/jacoelho/jed/internal/number"
)

// The check* methods mirror the parse* productions but discard every value.

func (p *Parser) checkValue() error {
	switch p.current.Kind {
	case lexer.LeftBrace:
		return p.checkObject()
	case lexer.LeftBracket:
		return p.checkArray()
	case lexer.String, lexer.True, lexer.False, lexer.Null:
		p.advance()
		return nil
	case lexer.Number:
		return p.checkNumber()
	default:
		return p.syntaxError("unexpected %v", p.current.Kind)
	}
}

func (p *Parser) checkNumber() error {
	if _, err := number.Parse(p.current.Literal); err != nil {
		return p.syntaxError("%v", err)
	}
	p.advance()
	return nil
}

func (p *Parser) checkObject() error {
	if err := p.consume(lexer.LeftBrace); err != nil {
		return err
	}

	if p.current.Kind != lexer.RightBrace {
		for {
			if err := p.consume(lexer.String); err != nil {
				return err
			}
			if err := p.consume(lexer.Colon); err != nil {
				return err
			}
			if err := p.checkValue(); err != nil {
				return err
			}
			if p.current.Kind != lexer.Comma {
				break
			}
			p.advance()
		}
	}

	return p.consume(lexer.RightBrace)
}

func (p *Parser) checkArray() error {
	if err := p.consume(lexer.LeftBracket); err != nil {
		return err
	}

	if p.current.Kind != lexer.RightBracket {
		for {
			if err := p.checkValue(); err != nil {
				return err
			}
			if p.current.Kind != lexer.Comma {
				break
			}
			p.advance()
		}
	}

	return p.consume(lexer.RightBracket)
}
