package vals

import (
	"strconv"
	"strings"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents the value, preferably a literal
	// that evaluates back to it, or a "<kind detail>" form otherwise.
	Repr() string
}

// Repr returns the printable representation of a value, the form echoed by
// the REPL.
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(v)
	case float64:
		return formatFloat(v)
	case string:
		return quote(v)
	case Tuple:
		var b strings.Builder
		b.WriteByte('(')
		for i, elem := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Repr(elem))
		}
		if len(v) == 1 {
			b.WriteByte(',')
		}
		b.WriteByte(')')
		return b.String()
	case *List:
		var b strings.Builder
		b.WriteByte('[')
		for i, elem := range v.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(Repr(elem))
		}
		b.WriteByte(']')
		return b.String()
	case *Dict:
		var b strings.Builder
		b.WriteByte('{')
		first := true
		v.Each(func(k, val any) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(Repr(k))
			b.WriteString(": ")
			b.WriteString(Repr(val))
			return true
		})
		b.WriteByte('}')
		return b.String()
	case *Set:
		if v.Len() == 0 {
			return "set()"
		}
		var b strings.Builder
		b.WriteByte('{')
		first := true
		v.Each(func(elem any) bool {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(Repr(elem))
			return true
		})
		b.WriteByte('}')
		return b.String()
	case Reprer:
		return v.Repr()
	default:
		return "<unknown>"
	}
}

// ToString returns the string form of a value, used by print and by string
// contexts like assert messages. It is the value itself for strings and the
// representation for everything else.
func ToString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return Repr(v)
}

// formatFloat renders a float so that integral values keep a trailing ".0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eENI") {
		s += ".0"
	}
	return s
}

// quote renders a string literal with single quotes, escaping backslashes,
// single quotes and newlines.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
