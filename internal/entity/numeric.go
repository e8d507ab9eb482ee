package entity

import "unicode"

// Digit caps bound the work of a single reference parse. They are a
// denial-of-service guard against unbounded digit runs, not a semantic
// limit: 8 hex digits and 10 decimal digits both cover all of Unicode
// with room to spare.
const (
	maxHexDigits = 8
	maxDecDigits = 10
)

// ParseNumeric decodes a numeric character reference from s, the text
// immediately following "&#". It returns the decoded scalar and the
// number of bytes of s consumed: the optional x/X radix marker, the
// digit run, and the trailing ';' when present.
//
// The match fails (ok == false) when the digit run is empty or exceeds
// its cap, the value is not a Unicode scalar (surrogate or out of
// range), or the scalar is a control character other than tab, newline,
// or carriage return. A digit run that reaches the end of the input
// without ';' also fails; tolerance for a missing terminator requires a
// following character that cannot extend the run.
func ParseNumeric(s string) (r rune, n int, ok bool) {
	hex := false
	if n < len(s) && (s[n] == 'x' || s[n] == 'X') {
		hex = true
		n++
	}

	limit := maxDecDigits
	if hex {
		limit = maxHexDigits
	}

	var v int64
	digits := 0
scan:
	for n < len(s) {
		var d int64
		switch c := s[n]; {
		case c >= '0' && c <= '9':
			d = int64(c - '0')
		case hex && c >= 'a' && c <= 'f':
			d = int64(c-'a') + 10
		case hex && c >= 'A' && c <= 'F':
			d = int64(c-'A') + 10
		default:
			break scan
		}
		digits++
		if digits > limit {
			return 0, 0, false
		}
		if hex {
			v = v<<4 | d
		} else {
			v = v*10 + d
		}
		n++
	}
	if digits == 0 {
		return 0, 0, false
	}
	if n < len(s) && s[n] == ';' {
		n++
	} else if n == len(s) {
		return 0, 0, false
	}

	if v > int64(unicode.MaxRune) || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, 0, false
	}
	r = rune(v)
	if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
		return 0, 0, false
	}
	return r, n, true
}
