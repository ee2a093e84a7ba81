package ast

import "github.com/pfl-lang/pfl/internal/lexer"

// IdentPattern binds the matched value to a name. The conventional wildcard
// "_" is an ordinary identifier pattern.
type IdentPattern struct {
	Name string
	span lexer.Span
}

// Span returns the pattern span.
func (p *IdentPattern) Span() lexer.Span { return p.span }

// NewIdentPattern constructs an identifier pattern.
func NewIdentPattern(name string, span lexer.Span) *IdentPattern {
	return &IdentPattern{Name: name, span: span}
}

// SetSpan updates the pattern span.
func (p *IdentPattern) SetSpan(span lexer.Span) {
	p.span = span
}

// patternNode marks IdentPattern as a pattern.
func (*IdentPattern) patternNode() {}

// NumberPattern matches a numeric literal exactly.
type NumberPattern struct {
	Value float64
	span  lexer.Span
}

// Span returns the pattern span.
func (p *NumberPattern) Span() lexer.Span { return p.span }

// NewNumberPattern constructs a number pattern.
func NewNumberPattern(value float64, span lexer.Span) *NumberPattern {
	return &NumberPattern{Value: value, span: span}
}

// SetSpan updates the pattern span.
func (p *NumberPattern) SetSpan(span lexer.Span) {
	p.span = span
}

// patternNode marks NumberPattern as a pattern.
func (*NumberPattern) patternNode() {}
