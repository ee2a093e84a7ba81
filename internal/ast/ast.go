package ast

import "github.com/pfl-lang/pfl/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern represents a match-arm pattern node.
type Pattern interface {
	Node
	patternNode()
}

// TypeExpr represents a type annotation.
type TypeExpr interface {
	Node
	typeNode()
}

// CompareOp enumerates comparison operators.
type CompareOp string

const (
	CompareEq CompareOp = "=="
	CompareLt CompareOp = "<"
	CompareGt CompareOp = ">"
)

// LogicOp enumerates logical operators.
type LogicOp string

const (
	LogicAnd LogicOp = "&&"
	LogicOr  LogicOp = "||"
)

// ArithOp enumerates arithmetic operators.
type ArithOp string

const (
	ArithAdd ArithOp = "+"
	ArithSub ArithOp = "-"
	ArithMul ArithOp = "*"
	ArithDiv ArithOp = "/"
)

// Program is the root of a parsed source unit: exactly one top-level
// expression. Expression is nil when parsing could not recover any
// expression at all.
type Program struct {
	Expression Expr
	span       lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node with the provided span.
func NewProgram(expr Expr, span lexer.Span) *Program {
	return &Program{Expression: expr, span: span}
}

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) {
	p.span = span
}

// LetExpr represents a let binding: "let x [: T] = value in body".
type LetExpr struct {
	Name  string
	Type  TypeExpr // optional, nil when no annotation
	Value Expr
	Body  Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *LetExpr) Span() lexer.Span { return e.span }

// NewLetExpr constructs a let expression node.
func NewLetExpr(name string, typ TypeExpr, value, body Expr, span lexer.Span) *LetExpr {
	return &LetExpr{
		Name:  name,
		Type:  typ,
		Value: value,
		Body:  body,
		span:  span,
	}
}

// SetSpan updates the let expression span.
func (e *LetExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks LetExpr as an expression.
func (*LetExpr) exprNode() {}

// IfExpr represents "if cond then a else b". Both branches are mandatory.
type IfExpr struct {
	Condition Expr
	Then      Expr
	Else      Expr
	span      lexer.Span
}

// Span returns the expression span.
func (e *IfExpr) Span() lexer.Span { return e.span }

// NewIfExpr constructs an if expression node.
func NewIfExpr(condition, thenBranch, elseBranch Expr, span lexer.Span) *IfExpr {
	return &IfExpr{
		Condition: condition,
		Then:      thenBranch,
		Else:      elseBranch,
		span:      span,
	}
}

// SetSpan updates the if expression span.
func (e *IfExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks IfExpr as an expression.
func (*IfExpr) exprNode() {}

// Lambda represents a single-parameter abstraction "\x [: T] -> body".
// Multi-parameter surface syntax desugars to nested Lambda nodes, one per
// parameter, outermost first.
type Lambda struct {
	Param string
	Type  TypeExpr // optional parameter annotation, nil when absent
	Body  Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Lambda) Span() lexer.Span { return e.span }

// NewLambda constructs a lambda node.
func NewLambda(param string, typ TypeExpr, body Expr, span lexer.Span) *Lambda {
	return &Lambda{
		Param: param,
		Type:  typ,
		Body:  body,
		span:  span,
	}
}

// SetSpan updates the lambda span.
func (e *Lambda) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks Lambda as an expression.
func (*Lambda) exprNode() {}

// MatchExpr represents "match subject with | pat -> expr ...".
// A well-formed node has at least one arm; the parser reports a diagnostic
// and refuses to build the node otherwise.
type MatchExpr struct {
	Subject Expr
	Arms    []*MatchArm
	span    lexer.Span
}

// Span returns the expression span.
func (e *MatchExpr) Span() lexer.Span { return e.span }

// NewMatchExpr constructs a match expression node.
func NewMatchExpr(subject Expr, arms []*MatchArm, span lexer.Span) *MatchExpr {
	return &MatchExpr{
		Subject: subject,
		Arms:    arms,
		span:    span,
	}
}

// SetSpan updates the match expression span.
func (e *MatchExpr) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks MatchExpr as an expression.
func (*MatchExpr) exprNode() {}

// MatchArm pairs a pattern with the expression evaluated when it matches.
type MatchArm struct {
	Pattern Pattern
	Body    Expr
	span    lexer.Span
}

// Span returns the arm span.
func (a *MatchArm) Span() lexer.Span { return a.span }

// NewMatchArm constructs a match arm.
func NewMatchArm(pattern Pattern, body Expr, span lexer.Span) *MatchArm {
	return &MatchArm{
		Pattern: pattern,
		Body:    body,
		span:    span,
	}
}

// Comparison represents a single, non-chaining comparison "a == b".
type Comparison struct {
	Left  Expr
	Op    CompareOp
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Comparison) Span() lexer.Span { return e.span }

// NewComparison constructs a comparison node.
func NewComparison(left Expr, op CompareOp, right Expr, span lexer.Span) *Comparison {
	return &Comparison{
		Left:  left,
		Op:    op,
		Right: right,
		span:  span,
	}
}

// SetSpan updates the comparison span.
func (e *Comparison) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks Comparison as an expression.
func (*Comparison) exprNode() {}

// Logic represents a logical operation "a && b".
type Logic struct {
	Left  Expr
	Op    LogicOp
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Logic) Span() lexer.Span { return e.span }

// NewLogic constructs a logic node.
func NewLogic(left Expr, op LogicOp, right Expr, span lexer.Span) *Logic {
	return &Logic{
		Left:  left,
		Op:    op,
		Right: right,
		span:  span,
	}
}

// SetSpan updates the logic span.
func (e *Logic) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks Logic as an expression.
func (*Logic) exprNode() {}

// Arithmetic represents an arithmetic operation "a + b".
type Arithmetic struct {
	Left  Expr
	Op    ArithOp
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Arithmetic) Span() lexer.Span { return e.span }

// NewArithmetic constructs an arithmetic node.
func NewArithmetic(left Expr, op ArithOp, right Expr, span lexer.Span) *Arithmetic {
	return &Arithmetic{
		Left:  left,
		Op:    op,
		Right: right,
		span:  span,
	}
}

// SetSpan updates the arithmetic span.
func (e *Arithmetic) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks Arithmetic as an expression.
func (*Arithmetic) exprNode() {}

// Application represents function application by juxtaposition, one argument
// per node: "f a b" builds Application(Application(f, a), b).
type Application struct {
	Fn   Expr
	Arg  Expr
	span lexer.Span
}

// Span returns the expression span.
func (e *Application) Span() lexer.Span { return e.span }

// NewApplication constructs an application node.
func NewApplication(fn, arg Expr, span lexer.Span) *Application {
	return &Application{
		Fn:   fn,
		Arg:  arg,
		span: span,
	}
}

// SetSpan updates the application span.
func (e *Application) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks Application as an expression.
func (*Application) exprNode() {}

// Composition represents the dot combinator "f . g" joining two callables.
type Composition struct {
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *Composition) Span() lexer.Span { return e.span }

// NewComposition constructs a composition node.
func NewComposition(left, right Expr, span lexer.Span) *Composition {
	return &Composition{
		Left:  left,
		Right: right,
		span:  span,
	}
}

// SetSpan updates the composition span.
func (e *Composition) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks Composition as an expression.
func (*Composition) exprNode() {}

// MemberAccess represents "(expr . member)" inside parentheses.
type MemberAccess struct {
	Object Expr
	Member string
	span   lexer.Span
}

// Span returns the expression span.
func (e *MemberAccess) Span() lexer.Span { return e.span }

// NewMemberAccess constructs a member access node.
func NewMemberAccess(object Expr, member string, span lexer.Span) *MemberAccess {
	return &MemberAccess{
		Object: object,
		Member: member,
		span:   span,
	}
}

// SetSpan updates the member access span.
func (e *MemberAccess) SetSpan(span lexer.Span) {
	e.span = span
}

// exprNode marks MemberAccess as an expression.
func (*MemberAccess) exprNode() {}

// Ident represents an identifier term.
type Ident struct {
	Name string
	span lexer.Span
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{Name: name, span: span}
}

// SetSpan updates the identifier span.
func (i *Ident) SetSpan(span lexer.Span) {
	i.span = span
}

// exprNode marks Ident as an expression.
func (*Ident) exprNode() {}

// NumberLit represents a numeric literal. Integer and fractional forms both
// carry a float64, so "5" and "5.0" are the same value.
type NumberLit struct {
	Value float64
	span  lexer.Span
}

// Span returns the literal span.
func (l *NumberLit) Span() lexer.Span { return l.span }

// NewNumberLit constructs a number literal node.
func NewNumberLit(value float64, span lexer.Span) *NumberLit {
	return &NumberLit{Value: value, span: span}
}

// SetSpan updates the literal span.
func (l *NumberLit) SetSpan(span lexer.Span) {
	l.span = span
}

// exprNode marks NumberLit as an expression.
func (*NumberLit) exprNode() {}
