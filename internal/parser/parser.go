package parser

import (
	"fmt"
	"strings"

	"github.com/pfl-lang/pfl/internal/ast"
	"github.com/pfl-lang/pfl/internal/diag"
	"github.com/pfl-lang/pfl/internal/lexer"
)

// maxNestingDepth bounds expression nesting so hostile inputs (thousands of
// nested parentheses) surface a diagnostic instead of exhausting the stack.
const maxNestingDepth = 512

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser implements a recursive descent parser for PFL. The grammar's
// left-recursive rules (composition, logic, additive, multiplicative,
// application) are parsed with iterative folding loops, left-associating in
// encounter order.
//
// Invariants:
//   - tokens is the complete, immutable token sequence produced up front by
//     the lexer; pos is the parser's only cursor into it. The final token is
//     always EOF, so cur() never runs off the end.
//   - errors is an append-only accumulator of recoverable diagnostics in
//     source order. Callers consult Errors() or Diagnostics() after
//     ParseProgram; entries are never reordered or deduplicated.
//   - A nil return from any parse rule means the error was already reported;
//     the rule's caller unwinds without reporting again, and ParseProgram
//     resynchronizes before the next attempt.
type Parser struct {
	tokens []lexer.Token
	pos    int

	lexErrors []lexer.LexerError
	errors    []ParseError

	filename string
	depth    int
}

// New returns a parser initialised with the provided source input. The input
// is tokenized in full before parsing begins.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	lx := lexer.New(input)
	if cfg.filename != "" {
		lx.SetFilename(cfg.filename)
	}

	all := lx.Tokenize()
	// ILLEGAL tokens already carry a lex error each; dropping them here keeps
	// the parser from reporting the same malformed lexeme a second time.
	tokens := make([]lexer.Token, 0, len(all))
	for _, tok := range all {
		if tok.Type != lexer.ILLEGAL {
			tokens = append(tokens, tok)
		}
	}

	return &Parser{
		tokens:    tokens,
		lexErrors: lx.Errors,
		filename:  cfg.filename,
	}
}

// Parse is a convenience wrapper: tokenize and parse input, returning the
// best-effort program together with all diagnostics in source order.
func Parse(input string, opts ...Option) (*ast.Program, []diag.Diagnostic) {
	p := New(input, opts...)
	prog := p.ParseProgram()
	return prog, p.Diagnostics()
}

// Errors returns all recoverable parse errors that were encountered.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// LexErrors returns the errors collected during tokenization.
func (p *Parser) LexErrors() []lexer.LexerError {
	return p.lexErrors
}

// Diagnostics merges lex and parse errors into shared diagnostics. Lexing
// runs to completion before parsing starts, so lex errors come first; within
// each phase the encounter order is preserved.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	diags := make([]diag.Diagnostic, 0, len(p.lexErrors)+len(p.errors))
	for _, e := range p.lexErrors {
		diags = append(diags, e.ToDiagnostic())
	}
	for _, e := range p.errors {
		diags = append(diags, e.ToDiagnostic())
	}
	return diags
}

// ParseProgram parses the token sequence as a single top-level expression.
// It always returns a program; a non-empty error list signals syntax failure
// and the program carries the best-effort AST reachable after recovery.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.cur().Span
	prog := ast.NewProgram(nil, start)

	if p.cur().Type == lexer.EOF {
		p.report(diag.CodeParserUnexpectedEOF, "expected expression, found end of input", start)
		return prog
	}

	for p.cur().Type != lexer.EOF {
		from := p.pos

		expr := p.parseExpression()
		if expr != nil {
			if prog.Expression == nil {
				prog.Expression = expr
				prog.SetSpan(mergeSpan(start, expr.Span()))
			}
			if p.cur().Type == lexer.EOF {
				break
			}
			p.report(diag.CodeParserUnexpectedToken,
				fmt.Sprintf("expected end of input, found %s", describeFound(p.cur())),
				p.cur().Span)
		}

		p.synchronize(from)
	}

	return prog
}

// cur returns the token under the cursor. The sequence is EOF-terminated, so
// the cursor is clamped to the final token.
func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peekAt returns the token n positions past the cursor without advancing.
func (p *Parser) peekAt(n int) lexer.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) peek() lexer.Token {
	return p.peekAt(1)
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// expect asserts that the current token matches the provided type, consuming
// it on success and reporting an unexpected-token (or end-of-input) error
// otherwise. context is appended to the message, e.g. " in let expression".
func (p *Parser) expect(tt lexer.TokenType, context string) (lexer.Token, bool) {
	if p.cur().Type == tt {
		tok := p.cur()
		p.advance()
		return tok, true
	}
	p.reportExpected(describeToken(tt), context)
	return lexer.Token{}, false
}

// reportExpected records an expected-vs-found diagnostic at the current token.
func (p *Parser) reportExpected(what, context string) {
	found := p.cur()
	if found.Type == lexer.EOF {
		p.report(diag.CodeParserUnexpectedEOF,
			fmt.Sprintf("unexpected end of input: expected %s%s", what, context),
			found.Span)
		return
	}
	p.report(diag.CodeParserUnexpectedToken,
		fmt.Sprintf("expected %s%s, found %s", what, context, describeFound(found)),
		found.Span)
}

// report records a recoverable diagnostic without aborting parsing. All call
// sites must supply the best-effort span available at the failure site.
func (p *Parser) report(code diag.Code, msg string, span lexer.Span) {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Span:     span,
		Severity: diag.SeverityError,
		Code:     code,
	})
}

// synchronize performs panic-mode recovery: discard tokens until the start
// of a new let/if/lambda/match expression, a closing parenthesis (consumed),
// or end of input. Always makes progress when the cursor has not moved since
// the failed attempt began.
func (p *Parser) synchronize(from int) {
	if p.pos == from && p.cur().Type != lexer.EOF {
		p.advance()
	}

	for {
		switch p.cur().Type {
		case lexer.EOF, lexer.LET, lexer.IF, lexer.BACKSLASH, lexer.MATCH:
			return
		case lexer.RPAREN:
			// Consume the whole run of closers so an error inside nested
			// parentheses yields one diagnostic, not one per level.
			for p.cur().Type == lexer.RPAREN {
				p.advance()
			}
			return
		}
		p.advance()
	}
}

// enterNesting bumps the depth counter, reporting once when the bound is hit.
func (p *Parser) enterNesting() bool {
	if p.depth >= maxNestingDepth {
		p.report(diag.CodeParserTooDeeplyNested, "expression too deeply nested", p.cur().Span)
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leaveNesting() {
	p.depth--
}

// describeToken names a token type the way error messages spell it.
func describeToken(tt lexer.TokenType) string {
	switch tt {
	case lexer.IDENT:
		return "identifier"
	case lexer.NUMBER:
		return "number"
	case lexer.EOF:
		return "end of input"
	case lexer.LET, lexer.IN, lexer.IF, lexer.THEN, lexer.ELSE, lexer.MATCH, lexer.WITH:
		return "'" + strings.ToLower(string(tt)) + "'"
	default:
		return "'" + string(tt) + "'"
	}
}

// describeFound names a concrete token, preferring its literal text.
func describeFound(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return "end of input"
	}
	if tok.Literal != "" {
		return "'" + tok.Literal + "'"
	}
	return "'" + string(tok.Type) + "'"
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
// Lexer spans are half-open; callers pass the earliest start span first to
// preserve monotonic growth for AST nodes.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
