package parse

import (
	"fmt"
	"strings"

	"src.smy.sh/pkg/diag"
)

// Tokenize converts source text into a token slice ending in exactly one EOF
// token. INDENT and DEDENT tokens are synthesized from leading whitespace;
// the counts of the two are always balanced.
//
// Before scanning, a backslash immediately followed by a newline is deleted,
// joining the two physical lines, and a trailing newline is appended when
// missing. Token positions refer to the normalized text.
func Tokenize(src Source) ([]Token, error) {
	code := strings.ReplaceAll(src.Code, "\\\n", "")
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	sc := &scanner{src: Source{Name: src.Name, Code: code, IsFile: src.IsFile}}
	err := sc.run()
	if err != nil {
		return nil, err
	}
	return sc.tokens, nil
}

type scanner struct {
	src    Source
	pos    int
	indent int // current indent level
	tokens []Token
}

const indentWidth = 4

func (sc *scanner) run() error {
	code := sc.src.Code
	atLineStart := true
	pending := 0
	for sc.pos < len(code) {
		if atLineStart {
			spaces, err := sc.scanLineStart()
			if err != nil {
				return err
			}
			if spaces == -1 {
				// Blank or comment-only line, consumed silently.
				continue
			}
			pending = spaces / indentWidth
			atLineStart = false
			continue
		}
		switch c := code[sc.pos]; {
		case c == '\n':
			sc.emit(Newline, sc.pos, sc.pos+1)
			sc.pos++
			atLineStart = true
		case c == '#':
			for sc.pos < len(code) && code[sc.pos] != '\n' {
				sc.pos++
			}
		case c == ' ':
			sc.pos++
		default:
			sc.flushIndent(pending)
			if err := sc.scanToken(); err != nil {
				return err
			}
		}
	}
	sc.flushIndent(0)
	sc.emit(EOF, sc.pos, sc.pos)
	return nil
}

// scanLineStart consumes the leading whitespace of a line and returns the
// number of leading spaces, or -1 for a blank or comment-only line (which is
// consumed entirely, including its newline).
func (sc *scanner) scanLineStart() (int, error) {
	code := sc.src.Code
	start := sc.pos
	for sc.pos < len(code) {
		switch code[sc.pos] {
		case ' ':
			sc.pos++
		case '\t':
			return 0, sc.errorAt(sc.pos, "tab in indentation")
		default:
			spaces := sc.pos - start
			if code[sc.pos] == '\n' || code[sc.pos] == '#' {
				for sc.pos < len(code) && code[sc.pos] != '\n' {
					sc.pos++
				}
				sc.pos++ // the newline
				return -1, nil
			}
			if spaces%indentWidth != 0 {
				return 0, sc.errorAt(start, "indentation is not a multiple of four spaces")
			}
			return spaces, nil
		}
	}
	return -1, nil
}

// flushIndent emits INDENT or DEDENT tokens until the current indent level
// matches the pending one. It runs just before a non-newline token is
// emitted.
func (sc *scanner) flushIndent(pending int) {
	for pending > sc.indent {
		sc.emit(Indent, sc.pos, sc.pos)
		sc.indent++
	}
	for sc.indent > pending {
		sc.emit(Dedent, sc.pos, sc.pos)
		sc.indent--
	}
}

func (sc *scanner) scanToken() error {
	code := sc.src.Code
	start := sc.pos
	c := code[sc.pos]
	switch {
	case isDigit(c):
		sc.pos++
		for sc.pos < len(code) && isDigit(code[sc.pos]) {
			sc.pos++
		}
		if sc.pos+1 < len(code) && code[sc.pos] == '.' && isDigit(code[sc.pos+1]) {
			sc.pos++
			for sc.pos < len(code) && isDigit(code[sc.pos]) {
				sc.pos++
			}
		}
		sc.emit(Number, start, sc.pos)
	case isIdent(c):
		for sc.pos < len(code) && isIdent(code[sc.pos]) {
			sc.pos++
		}
		sc.emit(Name, start, sc.pos)
	case c == '\'' || c == '"':
		return sc.scanString()
	case strings.IndexByte("()[]{}:.,;", c) >= 0:
		sc.pos++
		sc.emit(Punct, start, sc.pos)
	case strings.IndexByte("+-*/%<>=|&", c) >= 0:
		sc.pos++
		if sc.pos < len(code) && code[sc.pos] == '=' {
			sc.pos++
		}
		sc.emit(Punct, start, sc.pos)
	case c == '!':
		if sc.pos+1 < len(code) && code[sc.pos+1] == '=' {
			sc.pos += 2
			sc.emit(Punct, start, sc.pos)
			return nil
		}
		return sc.errorAt(start, "unexpected character '!'")
	default:
		return sc.errorAt(start, fmt.Sprintf("unexpected character %q", c))
	}
	return nil
}

func (sc *scanner) scanString() error {
	code := sc.src.Code
	start := sc.pos
	quote := code[sc.pos]
	sc.pos++
	var b strings.Builder
	for sc.pos < len(code) {
		switch c := code[sc.pos]; c {
		case quote:
			sc.pos++
			tok := Token{sc.src, diag.Ranging{From: start, To: sc.pos}, String, b.String()}
			sc.tokens = append(sc.tokens, tok)
			return nil
		case '\n':
			return sc.errorAt(start, "string not terminated")
		case '\\':
			if sc.pos+1 >= len(code) {
				return sc.errorAt(start, "string not terminated")
			}
			switch e := code[sc.pos+1]; e {
			case 'n':
				b.WriteByte('\n')
			case '\'', '"', '\\':
				b.WriteByte(e)
			default:
				return sc.errorAt(sc.pos, fmt.Sprintf("invalid escape sequence '\\%c'", e))
			}
			sc.pos += 2
		default:
			b.WriteByte(c)
			sc.pos++
		}
	}
	return sc.errorAt(start, "string not terminated")
}

func (sc *scanner) emit(kind TokenKind, from, to int) {
	sc.tokens = append(sc.tokens, Token{sc.src, diag.Ranging{From: from, To: to}, kind, ""})
}

func (sc *scanner) errorAt(pos int, msg string) error {
	end := pos
	if end < len(sc.src.Code) {
		end++
	}
	return newError(msg, sc.src, diag.Ranging{From: pos, To: end}, false)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdent(c byte) bool {
	return c == '_' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
