package htmlsafe

import "strings"

// reserved is the set of characters with special meaning in HTML/XML.
const reserved = "&<>\"'"

// Canonical replacement strings. The apostrophe is emitted as &#x27;
// (the MarkupSafe form); &#39; and &apos; are accepted on decode only.
const (
	escAmp  = "&amp;"
	escLt   = "&lt;"
	escGt   = "&gt;"
	escQuot = "&quot;"
	escApos = "&#x27;"
)

// Escape replaces the five reserved HTML characters in s with their
// canonical entities. Every other codepoint, control characters
// included, passes through unchanged. When s contains no reserved
// character the input string is returned as-is without allocating.
func Escape(s string) string {
	i := strings.IndexAny(s, reserved)
	if i < 0 {
		return s
	}

	var b strings.Builder
	// Room for sparse escaping without regrowing.
	b.Grow(2 * len(s))
	b.WriteString(s[:i])

	last := i
	for ; i < len(s); i++ {
		var rep string
		switch s[i] {
		case '&':
			rep = escAmp
		case '<':
			rep = escLt
		case '>':
			rep = escGt
		case '"':
			rep = escQuot
		case '\'':
			rep = escApos
		default:
			continue
		}
		b.WriteString(s[last:i])
		b.WriteString(rep)
		last = i + 1
	}
	b.WriteString(s[last:])
	return b.String()
}

// EscapeSilent escapes an optional input. A nil pointer yields the
// empty string; otherwise it delegates to Escape.
func EscapeSilent(s *string) string {
	if s == nil {
		return ""
	}
	return Escape(*s)
}
