package ast

import "github.com/pfl-lang/pfl/internal/lexer"

// PrimKind enumerates the primitive type names.
type PrimKind string

const (
	PrimInt    PrimKind = "Int"
	PrimBool   PrimKind = "Bool"
	PrimString PrimKind = "String"
	PrimFloat  PrimKind = "Float"
)

// PrimType is a primitive type annotation: Int, Bool, String or Float.
type PrimType struct {
	Kind PrimKind
	span lexer.Span
}

// Span returns the type span.
func (t *PrimType) Span() lexer.Span { return t.span }

// NewPrimType constructs a primitive type annotation.
func NewPrimType(kind PrimKind, span lexer.Span) *PrimType {
	return &PrimType{Kind: kind, span: span}
}

// typeNode marks PrimType as a type expression.
func (*PrimType) typeNode() {}

// FuncType is a function type annotation "(From -> To)".
type FuncType struct {
	From TypeExpr
	To   TypeExpr
	span lexer.Span
}

// Span returns the type span.
func (t *FuncType) Span() lexer.Span { return t.span }

// NewFuncType constructs a function type annotation.
func NewFuncType(from, to TypeExpr, span lexer.Span) *FuncType {
	return &FuncType{From: from, To: to, span: span}
}

// typeNode marks FuncType as a type expression.
func (*FuncType) typeNode() {}

// LookupPrimKind maps a type name to its primitive kind.
func LookupPrimKind(name string) (PrimKind, bool) {
	switch name {
	case "Int":
		return PrimInt, true
	case "Bool":
		return PrimBool, true
	case "String":
		return PrimString, true
	case "Float":
		return PrimFloat, true
	default:
		return "", false
	}
}
