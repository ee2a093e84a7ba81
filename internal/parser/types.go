package parser

import (
	"fmt"

	"github.com/pfl-lang/pfl/internal/ast"
	"github.com/pfl-lang/pfl/internal/diag"
	"github.com/pfl-lang/pfl/internal/lexer"
)

// parseType parses a type annotation: one of the primitive names Int, Bool,
// String, Float, or a parenthesized function type "(T1 -> T2)".
func (p *Parser) parseType() ast.TypeExpr {
	switch p.cur().Type {
	case lexer.IDENT:
		tok := p.cur()
		kind, ok := ast.LookupPrimKind(tok.Literal)
		if !ok {
			p.report(diag.CodeParserInvalidTypeName,
				fmt.Sprintf("unknown type name '%s'", tok.Literal), tok.Span)
			return nil
		}
		p.advance()
		return ast.NewPrimType(kind, tok.Span)

	case lexer.LPAREN:
		lparenTok := p.cur()
		p.advance()

		if !p.enterNesting() {
			return nil
		}
		defer p.leaveNesting()

		from := p.parseType()
		if from == nil {
			return nil
		}

		if _, ok := p.expect(lexer.ARROW, " in function type"); !ok {
			return nil
		}

		to := p.parseType()
		if to == nil {
			return nil
		}

		rparenTok, ok := p.expect(lexer.RPAREN, " in function type")
		if !ok {
			return nil
		}

		return ast.NewFuncType(from, to, mergeSpan(lparenTok.Span, rparenTok.Span))

	case lexer.EOF:
		p.report(diag.CodeParserUnexpectedEOF,
			"unexpected end of input: expected type annotation", p.cur().Span)
		return nil

	default:
		p.report(diag.CodeParserUnexpectedToken,
			fmt.Sprintf("expected type annotation, found %s", describeFound(p.cur())),
			p.cur().Span)
		return nil
	}
}
