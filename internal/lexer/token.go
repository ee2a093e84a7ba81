package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune of the original input
	End      int    // exclusive end index
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // exact runes from source
	Span    Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"  // x, compose, foldRight, ...
	NUMBER TokenType = "NUMBER" // 42, 3.14

	// Operators
	PLUS      TokenType = "+"
	MINUS     TokenType = "-"
	ASTERISK  TokenType = "*"
	SLASH     TokenType = "/"
	EQ        TokenType = "=="
	LT        TokenType = "<"
	GT        TokenType = ">"
	AND       TokenType = "&&"
	OR        TokenType = "||"
	DOT       TokenType = "."
	BACKSLASH TokenType = "\\"
	ARROW     TokenType = "->"

	// Delimiters
	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	COLON  TokenType = ":"
	PIPE   TokenType = "|"
	COMMA  TokenType = ","
	ASSIGN TokenType = "="

	// Keywords
	LET   TokenType = "LET"
	IN    TokenType = "IN"
	IF    TokenType = "IF"
	THEN  TokenType = "THEN"
	ELSE  TokenType = "ELSE"
	MATCH TokenType = "MATCH"
	WITH  TokenType = "WITH"
)

var keywords = map[string]TokenType{
	"let":   LET,
	"in":    IN,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"match": MATCH,
	"with":  WITH,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
