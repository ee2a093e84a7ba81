package parser

import (
	"fmt"
	"strconv"

	"github.com/pfl-lang/pfl/internal/ast"
	"github.com/pfl-lang/pfl/internal/diag"
	"github.com/pfl-lang/pfl/internal/lexer"
)

// parseExpression dispatches on the current token: the keyword forms each
// have a dedicated rule, everything else falls through to the operator
// chain, with composition layered on top of comparison.
func (p *Parser) parseExpression() ast.Expr {
	if !p.enterNesting() {
		return nil
	}
	defer p.leaveNesting()

	switch p.cur().Type {
	case lexer.LET:
		return p.parseLetExpr()
	case lexer.IF:
		return p.parseIfExpr()
	case lexer.BACKSLASH:
		return p.parseLambda()
	case lexer.MATCH:
		return p.parseMatchExpr()
	default:
		expr := p.parseComparison()
		if expr == nil {
			return nil
		}
		return p.parseComposition(expr)
	}
}

// parseExpressionNoComposition is parseExpression minus the trailing
// composition loop. Used inside parentheses so that "( expr . identifier )"
// can be claimed as member access before composition takes the dot.
func (p *Parser) parseExpressionNoComposition() ast.Expr {
	if !p.enterNesting() {
		return nil
	}
	defer p.leaveNesting()

	switch p.cur().Type {
	case lexer.LET:
		return p.parseLetExpr()
	case lexer.IF:
		return p.parseIfExpr()
	case lexer.BACKSLASH:
		return p.parseLambda()
	case lexer.MATCH:
		return p.parseMatchExpr()
	default:
		return p.parseComparison()
	}
}

// parseLetExpr parses "let identifier [: type] = expression in expression".
func (p *Parser) parseLetExpr() ast.Expr {
	letTok := p.cur()
	p.advance()

	nameTok, ok := p.expect(lexer.IDENT, " in let expression")
	if !ok {
		return nil
	}

	var typ ast.TypeExpr
	if p.cur().Type == lexer.COLON {
		p.advance()
		typ = p.parseType()
		if typ == nil {
			return nil
		}
	}

	if _, ok := p.expect(lexer.ASSIGN, " in let expression"); !ok {
		return nil
	}

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	if _, ok := p.expect(lexer.IN, " in let expression"); !ok {
		return nil
	}

	body := p.parseExpression()
	if body == nil {
		return nil
	}

	span := mergeSpan(letTok.Span, body.Span())
	return ast.NewLetExpr(nameTok.Literal, typ, value, body, span)
}

// parseIfExpr parses "if expression then expression else expression". Both
// branches are mandatory.
func (p *Parser) parseIfExpr() ast.Expr {
	ifTok := p.cur()
	p.advance()

	condition := p.parseExpression()
	if condition == nil {
		return nil
	}

	if _, ok := p.expect(lexer.THEN, " after condition"); !ok {
		return nil
	}

	thenBranch := p.parseExpression()
	if thenBranch == nil {
		return nil
	}

	if _, ok := p.expect(lexer.ELSE, " after then branch"); !ok {
		return nil
	}

	elseBranch := p.parseExpression()
	if elseBranch == nil {
		return nil
	}

	span := mergeSpan(ifTok.Span, elseBranch.Span())
	return ast.NewIfExpr(condition, thenBranch, elseBranch, span)
}

type lambdaParam struct {
	name string
	typ  ast.TypeExpr
}

// parseLambda parses "\x [: type] {, y [: type]} -> expression". The
// multi-parameter surface form desugars into nested single-parameter
// lambdas, one per parameter, currying left to right.
func (p *Parser) parseLambda() ast.Expr {
	backslashTok := p.cur()
	p.advance()

	var params []lambdaParam
	for {
		nameTok, ok := p.expect(lexer.IDENT, " in lambda")
		if !ok {
			return nil
		}

		var typ ast.TypeExpr
		if p.cur().Type == lexer.COLON {
			p.advance()
			typ = p.parseType()
			if typ == nil {
				return nil
			}
		}

		params = append(params, lambdaParam{name: nameTok.Literal, typ: typ})

		if p.cur().Type != lexer.COMMA {
			break
		}
		p.advance()
	}

	if _, ok := p.expect(lexer.ARROW, " in lambda"); !ok {
		return nil
	}

	body := p.parseExpression()
	if body == nil {
		return nil
	}

	span := mergeSpan(backslashTok.Span, body.Span())
	expr := body
	for i := len(params) - 1; i >= 0; i-- {
		expr = ast.NewLambda(params[i].name, params[i].typ, expr, span)
	}
	return expr
}

// parseMatchExpr parses "match expression with | pattern -> expression ...".
// At least one arm is required.
func (p *Parser) parseMatchExpr() ast.Expr {
	matchTok := p.cur()
	p.advance()

	subject := p.parseExpression()
	if subject == nil {
		return nil
	}

	if _, ok := p.expect(lexer.WITH, " in match expression"); !ok {
		return nil
	}

	var arms []*ast.MatchArm
	for p.cur().Type == lexer.PIPE {
		pipeTok := p.cur()
		p.advance()

		pattern := p.parsePattern()
		if pattern == nil {
			return nil
		}

		if _, ok := p.expect(lexer.ARROW, " in match arm"); !ok {
			return nil
		}

		body := p.parseExpression()
		if body == nil {
			return nil
		}

		arms = append(arms, ast.NewMatchArm(pattern, body, mergeSpan(pipeTok.Span, body.Span())))
	}

	if len(arms) == 0 {
		p.report(diag.CodeParserEmptyMatchArms, "expected at least one match arm", p.cur().Span)
		return nil
	}

	span := mergeSpan(matchTok.Span, arms[len(arms)-1].Span())
	return ast.NewMatchExpr(subject, arms, span)
}

// parseComposition folds "expr . expr . ..." left-associatively. The operand
// at each step is a full comparison chain, so composition binds loosest of
// the operator tiers.
func (p *Parser) parseComposition(left ast.Expr) ast.Expr {
	for p.cur().Type == lexer.DOT {
		p.advance()

		right := p.parseComparison()
		if right == nil {
			return nil
		}

		left = ast.NewComposition(left, right, mergeSpan(left.Span(), right.Span()))
	}
	return left
}

// parseComparison parses "logic [ (== | < | >) logic ]". Comparisons do not
// chain: at most one operator per level.
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseLogic()
	if left == nil {
		return nil
	}

	var op ast.CompareOp
	switch p.cur().Type {
	case lexer.EQ:
		op = ast.CompareEq
	case lexer.LT:
		op = ast.CompareLt
	case lexer.GT:
		op = ast.CompareGt
	default:
		return left
	}
	p.advance()

	right := p.parseLogic()
	if right == nil {
		return nil
	}

	return ast.NewComparison(left, op, right, mergeSpan(left.Span(), right.Span()))
}

// parseLogic folds "additive { (&& | ||) additive }" left-associatively.
func (p *Parser) parseLogic() ast.Expr {
	left := p.parseAdditive()
	if left == nil {
		return nil
	}

	for {
		var op ast.LogicOp
		switch p.cur().Type {
		case lexer.AND:
			op = ast.LogicAnd
		case lexer.OR:
			op = ast.LogicOr
		default:
			return left
		}
		p.advance()

		right := p.parseAdditive()
		if right == nil {
			return nil
		}

		left = ast.NewLogic(left, op, right, mergeSpan(left.Span(), right.Span()))
	}
}

// parseAdditive folds "multiplicative { (+ | -) multiplicative }"; the split
// from the multiplicative tier is what makes "2 + 3 * 4" bind the
// multiplication tighter.
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	if left == nil {
		return nil
	}

	for {
		var op ast.ArithOp
		switch p.cur().Type {
		case lexer.PLUS:
			op = ast.ArithAdd
		case lexer.MINUS:
			op = ast.ArithSub
		default:
			return left
		}
		p.advance()

		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}

		left = ast.NewArithmetic(left, op, right, mergeSpan(left.Span(), right.Span()))
	}
}

// parseMultiplicative folds "application { (* | /) application }".
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseApplication()
	if left == nil {
		return nil
	}

	for {
		var op ast.ArithOp
		switch p.cur().Type {
		case lexer.ASTERISK:
			op = ast.ArithMul
		case lexer.SLASH:
			op = ast.ArithDiv
		default:
			return left
		}
		p.advance()

		right := p.parseApplication()
		if right == nil {
			return nil
		}

		left = ast.NewArithmetic(left, op, right, mergeSpan(left.Span(), right.Span()))
	}
}

// isTermStart reports whether tt can begin a term, which is also the
// juxtaposition condition for application arguments.
func isTermStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IDENT, lexer.NUMBER, lexer.LPAREN, lexer.BACKSLASH:
		return true
	default:
		return false
	}
}

// parseApplication parses one or more adjacent terms with no separator,
// left-nesting each extra term as an argument: f a b => ((f a) b).
func (p *Parser) parseApplication() ast.Expr {
	expr := p.parseTerm()
	if expr == nil {
		return nil
	}

	for isTermStart(p.cur().Type) {
		arg := p.parseTerm()
		if arg == nil {
			return nil
		}
		expr = ast.NewApplication(expr, arg, mergeSpan(expr.Span(), arg.Span()))
	}

	return expr
}

// spanSetter is satisfied by nodes that expose SetSpan. parseParenTerm uses
// it to widen spans without wrapping the node in a synthetic grouping type.
type spanSetter interface {
	SetSpan(lexer.Span)
}

// parseTerm parses an identifier, a number, a lambda, or a parenthesized
// group.
func (p *Parser) parseTerm() ast.Expr {
	switch p.cur().Type {
	case lexer.IDENT:
		tok := p.cur()
		p.advance()
		return ast.NewIdent(tok.Literal, tok.Span)

	case lexer.NUMBER:
		tok := p.cur()
		p.advance()
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.report(diag.CodeParserInvalidNumber,
				fmt.Sprintf("invalid number literal '%s'", tok.Literal), tok.Span)
			return nil
		}
		return ast.NewNumberLit(value, tok.Span)

	case lexer.BACKSLASH:
		return p.parseLambda()

	case lexer.LPAREN:
		return p.parseParenTerm()

	case lexer.EOF:
		p.report(diag.CodeParserUnexpectedEOF,
			"unexpected end of input: expected expression", p.cur().Span)
		return nil

	default:
		p.report(diag.CodeParserUnexpectedToken,
			fmt.Sprintf("expected expression, found %s", describeFound(p.cur())),
			p.cur().Span)
		return nil
	}
}

// parseParenTerm parses "( expression )" and its dot-operator variants. The
// inner expression is parsed without composition so the dot can be examined:
// ". identifier )" (three-token lookahead) reads as member access, any other
// dot resumes composition before the closing parenthesis. Grouping itself
// produces no dedicated node; the inner node's span is widened to cover the
// parentheses.
func (p *Parser) parseParenTerm() ast.Expr {
	lparenTok := p.cur()
	p.advance()

	inner := p.parseExpressionNoComposition()
	if inner == nil {
		return nil
	}

	if p.cur().Type == lexer.DOT {
		if p.peek().Type == lexer.IDENT && p.peekAt(2).Type == lexer.RPAREN {
			p.advance() // '.'
			memberTok := p.cur()
			p.advance() // identifier
			rparenTok := p.cur()
			p.advance() // ')' guaranteed by lookahead

			span := mergeSpan(lparenTok.Span, rparenTok.Span)
			return ast.NewMemberAccess(inner, memberTok.Literal, span)
		}

		inner = p.parseComposition(inner)
		if inner == nil {
			return nil
		}
	}

	rparenTok, ok := p.expect(lexer.RPAREN, " after expression")
	if !ok {
		return nil
	}

	span := mergeSpan(lparenTok.Span, rparenTok.Span)
	if setter, ok := inner.(spanSetter); ok {
		setter.SetSpan(span)
	}
	return inner
}
