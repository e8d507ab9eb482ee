package htmlsafe

import "fmt"

// Markup is a string that is already safe for HTML embedding. Escaping
// a Markup value is a no-op, which prevents double-escaping when safe
// fragments are combined with untrusted input.
type Markup string

// String returns the markup unchanged.
func (m Markup) String() string { return string(m) }

// Unescape resolves the entities in the markup back to raw text.
func (m Markup) Unescape() string { return Unescape(string(m)) }

// HTMLer is implemented by values that render themselves as trusted
// markup. EscapeValue uses it instead of escaping.
type HTMLer interface {
	HTML() Markup
}

// EscapeValue converts an arbitrary value to Markup. Markup and HTMLer
// values pass through untouched; strings, Stringers, and everything
// else are formatted and escaped.
func EscapeValue(v any) Markup {
	switch t := v.(type) {
	case Markup:
		return t
	case HTMLer:
		return t.HTML()
	case string:
		return Markup(Escape(t))
	case fmt.Stringer:
		return Markup(Escape(t.String()))
	default:
		return Markup(Escape(fmt.Sprint(v)))
	}
}

// Sprintf formats according to format with every argument passed
// through EscapeValue, yielding trusted markup from a trusted format
// string and untrusted arguments.
func Sprintf(format string, args ...any) Markup {
	safe := make([]any, len(args))
	for i, a := range args {
		safe[i] = string(EscapeValue(a))
	}
	return Markup(fmt.Sprintf(format, safe...))
}
