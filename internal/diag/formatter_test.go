package diag

import (
	"bytes"
	"strings"
	"testing"
)

func errorAt(line, column, start, end int, msg string) Diagnostic {
	return Diagnostic{
		Stage:    StageParser,
		Severity: SeverityError,
		Code:     CodeParserUnexpectedToken,
		Message:  msg,
		Span:     Span{Line: line, Column: column, Start: start, End: end},
	}
}

func TestFormatter_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.Format(errorAt(1, 9, 8, 10, "expected expression, found 'in'"))

	want := "1:9: expected expression, found 'in'\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatter_SnippetWithCaret(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)
	f.SetSource("let x = in 5")

	f.Format(errorAt(1, 9, 8, 10, "expected expression, found 'in'"))

	want := strings.Join([]string{
		"1:9: expected expression, found 'in'",
		" 1 | let x = in 5",
		"   |         ^^",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("wrong rendering.\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestFormatter_CaretClampedToLine(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)
	f.SetSource("let x")

	// A span that runs past the end of the line still draws something.
	f.Format(errorAt(1, 5, 4, 20, "unexpected end of input"))

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header, snippet and caret lines, got %q", buf.String())
	}
	caretLine := lines[2]
	if !strings.HasSuffix(caretLine, "^") {
		t.Fatalf("expected caret line, got %q", caretLine)
	}
	if strings.Count(caretLine, "^") != 1 {
		t.Fatalf("expected caret width clamped to 1, got %q", caretLine)
	}
}

func TestFormatter_ContextLines(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, WithContextLines(1))
	f.SetSource("let x = 1\nin x +\nx")

	f.Format(errorAt(2, 6, 13, 14, "expected expression"))

	out := buf.String()
	for _, fragment := range []string{" 1 | let x = 1", " 2 | in x +", " 3 | x"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, out)
		}
	}
}

func TestFormatter_MaxErrors(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, WithMaxErrors(2))

	diags := []Diagnostic{
		errorAt(1, 1, 0, 1, "first"),
		errorAt(1, 3, 2, 3, "second"),
		errorAt(1, 5, 4, 5, "third"),
		errorAt(1, 7, 6, 7, "fourth"),
	}

	shown := f.Print(diags)
	if shown != 2 {
		t.Fatalf("expected 2 shown, got %d", shown)
	}
	if !strings.Contains(buf.String(), "... and 2 more errors") {
		t.Fatalf("expected overflow notice, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "third") {
		t.Fatalf("expected third diagnostic to be suppressed")
	}
}

func TestFormatter_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.Print([]Diagnostic{
		errorAt(1, 1, 0, 1, "first"),
		errorAt(2, 1, 10, 11, "second"),
	})

	out := buf.String()
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Fatalf("expected diagnostics rendered in order, got:\n%s", out)
	}
}

func TestDiagnostic_String(t *testing.T) {
	d := errorAt(3, 7, 20, 22, "expected 'in' in let expression")

	want := "3:7: expected 'in' in let expression"
	if d.String() != want {
		t.Fatalf("expected %q, got %q", want, d.String())
	}
}

func TestSpan_String(t *testing.T) {
	tests := []struct {
		span Span
		want string
	}{
		{Span{Line: 1, Column: 5}, "1:5"},
		{Span{Filename: "demo.pfl", Line: 2, Column: 3}, "demo.pfl:2:3"},
	}

	for i, tt := range tests {
		if got := tt.span.String(); got != tt.want {
			t.Fatalf("tests[%d] - expected %q, got %q", i, tt.want, got)
		}
	}
}
