package htmlsafe

import (
	"strings"

	"github.com/reoring/htmlsafe/internal/entity"
)

// Unescape substitutes named and numeric character references in s with
// the characters they denote. Unrecognized or malformed references are
// preserved literally; the transform never fails. When s contains no
// '&' the input string is returned as-is without allocating.
func Unescape(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:amp])

	i := amp
	for i < len(s) {
		if s[i] != '&' {
			// Copy the run up to the next '&' verbatim.
			j := strings.IndexByte(s[i:], '&')
			if j < 0 {
				b.WriteString(s[i:])
				break
			}
			b.WriteString(s[i : i+j])
			i += j
			continue
		}
		if r, n, ok := matchEntity(s[i:]); ok {
			b.WriteRune(r)
			i += n
		} else {
			// Dead entity: emit the '&' alone and resume at the very
			// next character.
			b.WriteByte('&')
			i++
		}
	}
	return b.String()
}

// matchEntity attempts entity recognition at s, which starts with '&'.
// It returns the decoded scalar and the total number of bytes matched,
// terminator included.
func matchEntity(s string) (r rune, n int, ok bool) {
	if len(s) < 2 {
		return 0, 0, false
	}
	if s[1] == '#' {
		r, n, ok = entity.ParseNumeric(s[2:])
		if !ok {
			return 0, 0, false
		}
		return r, n + 2, true
	}

	// Collect the maximal alphanumeric run after '&'. Because the run
	// is maximal, a name match cannot be the prefix of a longer name
	// still present in the input.
	j := 1
	for j < len(s) && isEntityNameByte(s[j]) {
		j++
	}
	if j == 1 {
		return 0, 0, false
	}
	r, ok = entity.Named(s[1:j])
	if !ok {
		return 0, 0, false
	}
	if j < len(s) && s[j] == ';' {
		return r, j + 1, true
	}
	if j == len(s) {
		// End of input is not a terminator; leave the span unresolved.
		return 0, 0, false
	}
	// Missing ';' tolerated: the following character cannot extend the
	// name, so the match is unambiguous.
	return r, j, true
}

func isEntityNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
