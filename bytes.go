package htmlsafe

import "bytes"

// byteEntities is the reduced decode set used by UnescapeBytes: the
// fixed entity byte strings for the five reserved characters, including
// their decimal numeric synonyms and &apos;. Byte-level processing is
// deliberately lighter than Unescape because it must work on
// possibly-invalid encodings; it performs no named-table lookup and no
// numeric decoding.
var byteEntities = []struct {
	text string
	b    byte
}{
	{escAmp, '&'},
	{"&#38;", '&'},
	{escLt, '<'},
	{"&#60;", '<'},
	{escGt, '>'},
	{"&#62;", '>'},
	{escQuot, '"'},
	{"&#34;", '"'},
	{escApos, '\''},
	{"&#39;", '\''},
	{"&apos;", '\''},
}

// EscapeBytes performs the five-character substitution of Escape at the
// byte level. The input need not be valid UTF-8: only the five
// single-byte ASCII reserved characters are recognized, and every other
// byte, invalid sequences included, is copied through unchanged. When
// no reserved byte is present the input slice is returned as-is.
func EscapeBytes(p []byte) []byte {
	i := bytes.IndexAny(p, reserved)
	if i < 0 {
		return p
	}

	out := make([]byte, 0, 2*len(p))
	out = append(out, p[:i]...)
	last := i
	for ; i < len(p); i++ {
		var rep string
		switch p[i] {
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
		out = append(out, p[last:i]...)
		out = append(out, rep...)
		last = i + 1
	}
	return append(out, p[last:]...)
}

// UnescapeBytes reverses EscapeBytes by exact prefix matching against
// the fixed reserved-character entity strings. Non-matching bytes are
// copied through unchanged; a '&' that heads no known entity stays
// literal. When p contains no '&' the input slice is returned as-is.
func UnescapeBytes(p []byte) []byte {
	if bytes.IndexByte(p, '&') < 0 {
		return p
	}

	out := make([]byte, 0, len(p))
	i := 0
	for i < len(p) {
		if p[i] != '&' {
			j := bytes.IndexByte(p[i:], '&')
			if j < 0 {
				return append(out, p[i:]...)
			}
			out = append(out, p[i:i+j]...)
			i += j
		}
		matched := false
		for _, e := range byteEntities {
			if len(p)-i >= len(e.text) && string(p[i:i+len(e.text)]) == e.text {
				out = append(out, e.b)
				i += len(e.text)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, '&')
			i++
		}
	}
	return out
}
