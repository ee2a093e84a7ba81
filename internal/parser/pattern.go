package parser

import (
	"fmt"
	"strconv"

	"github.com/pfl-lang/pfl/internal/ast"
	"github.com/pfl-lang/pfl/internal/diag"
	"github.com/pfl-lang/pfl/internal/lexer"
)

// parsePattern parses a match-arm pattern: an identifier (which binds, with
// "_" as the conventional wildcard), a number literal, or a parenthesized
// sub-pattern.
func (p *Parser) parsePattern() ast.Pattern {
	switch p.cur().Type {
	case lexer.IDENT:
		tok := p.cur()
		p.advance()
		return ast.NewIdentPattern(tok.Literal, tok.Span)

	case lexer.NUMBER:
		tok := p.cur()
		p.advance()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.report(diag.CodeParserInvalidNumber,
				fmt.Sprintf("invalid number literal '%s'", tok.Literal), tok.Span)
			return nil
		}
		return ast.NewNumberPattern(value, tok.Span)

	case lexer.LPAREN:
		lparenTok := p.cur()
		p.advance()

		if !p.enterNesting() {
			return nil
		}
		inner := p.parsePattern()
		p.leaveNesting()
		if inner == nil {
			return nil
		}

		rparenTok, ok := p.expect(lexer.RPAREN, " after pattern")
		if !ok {
			return nil
		}

		if setter, ok := inner.(spanSetter); ok {
			setter.SetSpan(mergeSpan(lparenTok.Span, rparenTok.Span))
		}
		return inner

	case lexer.EOF:
		p.report(diag.CodeParserUnexpectedEOF,
			"unexpected end of input: expected pattern", p.cur().Span)
		return nil

	default:
		p.report(diag.CodeParserUnexpectedToken,
			fmt.Sprintf("expected pattern, found %s", describeFound(p.cur())),
			p.cur().Span)
		return nil
	}
}
