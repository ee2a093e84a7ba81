package ast

import (
	"strings"
	"testing"

	"github.com/pfl-lang/pfl/internal/lexer"
)

func TestPrint_LetExpression(t *testing.T) {
	span := lexer.Span{Line: 1, Column: 1}
	let := NewLetExpr("x",
		nil,
		NewNumberLit(5, span),
		NewArithmetic(NewIdent("x", span), ArithAdd, NewNumberLit(1, span), span),
		span)
	prog := NewProgram(let, span)

	got := Print(prog)
	want := strings.Join([]string{
		"Program",
		"  Expression: LetExpr(x)",
		"    Value: Number(5)",
		"    Body: Arithmetic(+)",
		"      Left: Identifier(x)",
		"      Right: Number(1)",
		"",
	}, "\n")

	if got != want {
		t.Fatalf("wrong rendering.\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrint_LetWithAnnotation(t *testing.T) {
	span := lexer.Span{Line: 1, Column: 1}
	fn := NewFuncType(
		NewPrimType(PrimInt, span),
		NewPrimType(PrimBool, span),
		span)
	let := NewLetExpr("f", fn, NewIdent("g", span), NewIdent("f", span), span)

	got := Print(let)
	want := strings.Join([]string{
		"LetExpr(f)",
		"  Type: Function",
		"    From: Int",
		"    To: Bool",
		"  Value: Identifier(g)",
		"  Body: Identifier(f)",
		"",
	}, "\n")

	if got != want {
		t.Fatalf("wrong rendering.\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrint_MatchArms(t *testing.T) {
	span := lexer.Span{Line: 1, Column: 1}
	m := NewMatchExpr(
		NewIdent("n", span),
		[]*MatchArm{
			NewMatchArm(NewNumberPattern(0, span), NewNumberLit(1, span), span),
			NewMatchArm(NewIdentPattern("m", span), NewIdent("m", span), span),
		},
		span)

	got := Print(m)
	want := strings.Join([]string{
		"MatchExpr",
		"  Subject: Identifier(n)",
		"  MatchArm",
		"    Pattern: NumberPattern(0)",
		"    Body: Number(1)",
		"  MatchArm",
		"    Pattern: IdentifierPattern(m)",
		"    Body: Identifier(m)",
		"",
	}, "\n")

	if got != want {
		t.Fatalf("wrong rendering.\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrint_NumberFormatting(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{5, "Number(5)"},
		{3.14, "Number(3.14)"},
		{0.5, "Number(0.5)"},
	}

	for i, tt := range tests {
		got := Print(NewNumberLit(tt.value, lexer.Span{}))
		if got != tt.want+"\n" {
			t.Fatalf("tests[%d] - expected %q, got %q", i, tt.want, got)
		}
	}
}

func TestPrint_MissingChild(t *testing.T) {
	span := lexer.Span{Line: 1, Column: 1}
	let := NewLetExpr("x", nil, nil, NewIdent("x", span), span)

	got := Print(let)
	if !strings.Contains(got, "Value: <missing>") {
		t.Fatalf("expected missing marker, got:\n%s", got)
	}
}
