package lexer

import (
	"testing"
)

func TestLexer_InvalidCharacter(t *testing.T) {
	l := New(`1 + # + 2`)
	tokens := l.Tokenize()

	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors))
	}

	err := l.Errors[0]
	if err.Kind != ErrInvalidCharacter {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err.Kind)
	}
	if err.Span.Line != 1 || err.Span.Column != 5 {
		t.Fatalf("expected error at 1:5, got %d:%d", err.Span.Line, err.Span.Column)
	}

	// The offending rune still surfaces as an ILLEGAL token so the
	// stream stays aligned with the source.
	foundIllegal := false
	for _, tok := range tokens {
		if tok.Type == ILLEGAL {
			foundIllegal = true
			if tok.Literal != "#" {
				t.Fatalf("expected ILLEGAL literal %q, got %q", "#", tok.Literal)
			}
		}
	}
	if !foundIllegal {
		t.Fatalf("expected an ILLEGAL token in the stream")
	}
}

func TestLexer_LoneAmpersand(t *testing.T) {
	l := New(`a & b`)
	l.Tokenize()

	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors))
	}
	if l.Errors[0].Kind != ErrInvalidCharacter {
		t.Fatalf("expected ErrInvalidCharacter, got %v", l.Errors[0].Kind)
	}
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	l := New("1 + /* never closed")
	tokens := l.Tokenize()

	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors))
	}

	err := l.Errors[0]
	if err.Kind != ErrUnterminatedBlockComment {
		t.Fatalf("expected ErrUnterminatedBlockComment, got %v", err.Kind)
	}
	// The error points at the comment opener, not the end of input.
	if err.Span.Line != 1 || err.Span.Column != 5 {
		t.Fatalf("expected error at 1:5, got %d:%d", err.Span.Line, err.Span.Column)
	}

	// Tokens before the comment are still produced.
	if tokens[0].Type != NUMBER || tokens[1].Type != PLUS {
		t.Fatalf("expected NUMBER PLUS before the comment, got %q %q",
			tokens[0].Type, tokens[1].Type)
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Fatalf("expected trailing EOF token")
	}
}

func TestLexer_UnmatchedCommentClose(t *testing.T) {
	l := New(`1 */ 2`)
	l.Tokenize()

	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors))
	}
	if l.Errors[0].Kind != ErrUnmatchedCommentClose {
		t.Fatalf("expected ErrUnmatchedCommentClose, got %v", l.Errors[0].Kind)
	}
}

func TestLexer_RecoversAfterInvalidCharacter(t *testing.T) {
	l := New(`@ let x = 1 in x`)
	tokens := l.Tokenize()

	if len(l.Errors) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors))
	}

	// Everything after the bad rune tokenizes normally.
	var types []TokenType
	for _, tok := range tokens {
		if tok.Type != ILLEGAL {
			types = append(types, tok.Type)
		}
	}
	expected := []TokenType{LET, IDENT, ASSIGN, NUMBER, IN, IDENT, EOF}
	if len(types) != len(expected) {
		t.Fatalf("expected %d tokens after recovery, got %d", len(expected), len(types))
	}
	for i, typ := range expected {
		if types[i] != typ {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, typ, types[i])
		}
	}
}
