package lexer

import (
	"strconv"
	"unicode"

	"github.com/pfl-lang/pfl/internal/diag"
)

type LexerErrorKind int

const (
	ErrInvalidCharacter LexerErrorKind = iota
	ErrUnterminatedBlockComment
	ErrUnmatchedCommentClose
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrInvalidCharacter:
		return diag.CodeLexerInvalidCharacter
	case ErrUnterminatedBlockComment:
		return diag.CodeLexerUnterminatedComment
	case ErrUnmatchedCommentClose:
		return diag.CodeLexerUnmatchedCommentClose
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer scans PFL source text into tokens. Lexing never aborts: malformed
// input produces ILLEGAL tokens and collected errors, and scanning continues
// at the next character.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []LexerError
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		ch:     0,
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes all subsequently produced spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// read advances the lexer to the next character. Line/column always reflect
// the position of the character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1
	inputLen := len(l.input)

	if l.pos >= inputLen {
		// Moved past the last rune; normalize position to virtual EOF.
		if prevPos >= 0 && prevPos < inputLen {
			if l.input[prevPos] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		} else if prevPos < 0 {
			// Empty input: column points at the first position.
			l.column = 1
		}
		l.ch = 0 // EOF
		return
	}

	l.ch = l.input[l.pos]

	// If the previous character was a newline, we are now on a new line.
	if prevPos >= 0 && prevPos < inputLen && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// currentSpanStart returns the current position for span tracking
func (l *Lexer) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

// makeToken creates a token with span information
func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, literal string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// single emits a one-character token and advances past it.
func (l *Lexer) single(tokType TokenType) Token {
	startLine, startColumn, startPos := l.currentSpanStart()
	literal := string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal)
}

// double emits a two-character token (the current rune plus its peek) and
// advances past both. Callers must have verified the peek already.
func (l *Lexer) double(tokType TokenType) Token {
	startLine, startColumn, startPos := l.currentSpanStart()
	literal := string(l.ch)
	l.read()
	literal += string(l.ch)
	l.read()
	return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.read()
	}
}

// skipLineComment consumes "//" to the end of the line.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.read()
	}
}

// skipBlockComment consumes "/* ... */". Block comments do not nest; an
// unterminated comment consumes the remainder of the input and reports a
// single error at the opening position.
func (l *Lexer) skipBlockComment(startLine, startColumn, startPos int) {
	for {
		if l.ch == 0 {
			l.addError(
				ErrUnterminatedBlockComment,
				"unterminated block comment",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos},
			)
			return
		}
		if l.ch == '*' && l.peek() == '/' {
			l.read() // consume '*'
			l.read() // consume '/'
			return
		}
		l.read()
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads a number literal: one or more digits, optionally followed
// by '.' and one or more digits. A trailing '.' with no digit after it is not
// part of the number, so "5." lexes as NUMBER(5) followed by DOT.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.read()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		l.read() // consume '.'
		for isDigit(l.ch) {
			l.read()
		}
	}
	return string(l.input[start:l.pos])
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		switch l.ch {
		case 0:
			startLine, startColumn, startPos := l.currentSpanStart()
			if startColumn == 0 {
				startColumn = 1
			}
			return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "")

		case '=':
			if l.peek() == '=' {
				return l.double(EQ)
			}
			return l.single(ASSIGN)

		case '-':
			if l.peek() == '>' {
				return l.double(ARROW)
			}
			return l.single(MINUS)

		case '&':
			if l.peek() == '&' {
				return l.double(AND)
			}
			return l.illegal()

		case '|':
			if l.peek() == '|' {
				return l.double(OR)
			}
			return l.single(PIPE)

		case '/':
			switch l.peek() {
			case '/':
				l.read() // consume first '/'
				l.read() // consume second '/'
				l.skipLineComment()
				continue
			case '*':
				startLine, startColumn, startPos := l.currentSpanStart()
				l.read() // consume '/'
				l.read() // consume '*'
				l.skipBlockComment(startLine, startColumn, startPos)
				continue
			default:
				return l.single(SLASH)
			}

		case '*':
			if l.peek() == '/' {
				// A '*/' with no open comment is malformed on its own.
				startLine, startColumn, startPos := l.currentSpanStart()
				l.read()
				l.read()
				tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, "*/")
				l.addError(
					ErrUnmatchedCommentClose,
					"unmatched block comment terminator '*/'",
					tok.Span,
				)
				return tok
			}
			return l.single(ASTERISK)

		case '+':
			return l.single(PLUS)
		case '<':
			return l.single(LT)
		case '>':
			return l.single(GT)
		case '.':
			return l.single(DOT)
		case '\\':
			return l.single(BACKSLASH)
		case '(':
			return l.single(LPAREN)
		case ')':
			return l.single(RPAREN)
		case ':':
			return l.single(COLON)
		case ',':
			return l.single(COMMA)

		default:
			if isLetter(l.ch) {
				startLine, startColumn, startPos := l.currentSpanStart()
				literal := l.readIdentifier()
				tokType := LookupIdent(literal)
				return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, literal)
			} else if isDigit(l.ch) {
				startLine, startColumn, startPos := l.currentSpanStart()
				literal := l.readNumber()
				return l.makeToken(NUMBER, startLine, startColumn, startPos, l.pos, literal)
			}
			return l.illegal()
		}
	}
}

// illegal records an invalid-character error, emits an ILLEGAL token for the
// offending rune and advances past it so lexing continues.
func (l *Lexer) illegal() Token {
	startLine, startColumn, startPos := l.currentSpanStart()
	literal := string(l.ch)
	l.read()
	tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, literal)
	l.addError(
		ErrInvalidCharacter,
		"invalid character "+strconv.Quote(literal),
		tok.Span,
	)
	return tok
}

// Tokenize scans the entire input and returns the token sequence, terminated
// by an EOF token. Lex errors are collected on l.Errors.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}
