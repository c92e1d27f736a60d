package parse

import (
	"strings"

	"src.smy.sh/pkg/diag"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind int

// Token kinds. Newline, Indent, Dedent and EOF are synthesized by the
// scanner; the rest correspond to text in the source.
const (
	Newline TokenKind = iota
	Indent
	Dedent
	EOF
	Number
	String
	Name
	Punct
)

// Token is a lexical unit of Smython source code. Its lexeme is derived from
// the source range, except for the synthetic kinds, whose lexeme is their kind
// name. String tokens additionally keep their decoded value in val.
type Token struct {
	Src Source
	diag.Ranging
	Kind TokenKind

	// Decoded value of a string literal, with escape sequences resolved.
	val string
}

// Keywords of the language. True, False and None are listed here so that they
// cannot be used as plain names; the parser turns them into literals.
var keywords = map[string]bool{
	"and": true, "as": true, "assert": true, "break": true, "class": true,
	"continue": true, "def": true, "elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true, "global": true, "if": true,
	"import": true, "in": true, "is": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"True": true, "False": true, "None": true,
}

// Lexeme returns the text of the token as written in the source. Synthetic
// tokens report their kind name instead.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Newline:
		return "NEWLINE"
	case Indent:
		return "INDENT"
	case Dedent:
		return "DEDENT"
	case EOF:
		return "EOF"
	}
	return t.Src.Code[t.From:t.To]
}

// StringVal returns the decoded value of a string token.
func (t Token) StringVal() string { return t.val }

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool {
	return t.Kind == Name && keywords[t.Lexeme()]
}

// IsName reports whether the token is an identifier that is not a keyword.
func (t Token) IsName() bool {
	return t.Kind == Name && !keywords[t.Lexeme()]
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsString reports whether the token is a string literal.
func (t Token) IsString() bool { return t.Kind == String }

// Line returns the 1-based source line the token starts on, computed by
// counting newlines up to its start offset.
func (t Token) Line() int {
	return strings.Count(t.Src.Code[:t.From], "\n") + 1
}

// Is reports whether the token's lexeme equals the given string. Tokens
// compare equal by lexeme.
func (t Token) Is(lexeme string) bool {
	return t.Lexeme() == lexeme
}
