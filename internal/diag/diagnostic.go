package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerInvalidCharacter      Code = "LEXER_INVALID_CHARACTER"
	CodeLexerUnterminatedComment   Code = "LEXER_UNTERMINATED_COMMENT"
	CodeLexerUnmatchedCommentClose Code = "LEXER_UNMATCHED_COMMENT_CLOSE"

	// Parser errors
	CodeParserUnexpectedToken Code = "PARSER_UNEXPECTED_TOKEN"
	CodeParserUnexpectedEOF   Code = "PARSER_UNEXPECTED_EOF"
	CodeParserEmptyMatchArms  Code = "PARSER_EMPTY_MATCH_ARMS"
	CodeParserTooDeeplyNested Code = "PARSER_TOO_DEEPLY_NESTED"
	CodeParserInvalidTypeName Code = "PARSER_INVALID_TYPE_NAME"
	CodeParserInvalidNumber   Code = "PARSER_INVALID_NUMBER"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a front-end diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
}

// String renders the diagnostic in the canonical "line:column: message" form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Span.Line, d.Span.Column, d.Message)
}
