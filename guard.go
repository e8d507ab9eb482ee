package htmlsafe

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMaxInputBytes is the recommended size cap for untrusted input.
const DefaultMaxInputBytes = 10 << 20

// Guard applies caller-side contracts before delegating to the
// transforms: an input-size cap and, for text-typed byte entry points,
// UTF-8 validity. The core transforms carry no limit of their own and
// process arbitrarily large input to completion; oversize is a
// caller-visible error, never a partial result.
//
// The zero value enforces nothing.
type Guard struct {
	// MaxInputBytes rejects inputs longer than this many bytes.
	// Zero or negative means no limit.
	MaxInputBytes int64
}

func (g Guard) checkSize(n int) error {
	if g.MaxInputBytes > 0 && int64(n) > g.MaxInputBytes {
		return singleIssue(CodeInputTooLarge,
			fmt.Sprintf("%d bytes (max %d)", n, g.MaxInputBytes),
			map[string]any{"size": n, "max": g.MaxInputBytes})
	}
	return nil
}

// Escape applies the size cap, then delegates to Escape.
func (g Guard) Escape(s string) (string, error) {
	if err := g.checkSize(len(s)); err != nil {
		return "", err
	}
	return Escape(s), nil
}

// Unescape applies the size cap, then delegates to Unescape.
func (g Guard) Unescape(s string) (string, error) {
	if err := g.checkSize(len(s)); err != nil {
		return "", err
	}
	return Unescape(s), nil
}

// EscapeBytes applies the size cap, then delegates to EscapeBytes.
func (g Guard) EscapeBytes(p []byte) ([]byte, error) {
	if err := g.checkSize(len(p)); err != nil {
		return nil, err
	}
	return EscapeBytes(p), nil
}

// UnescapeBytes applies the size cap, then delegates to UnescapeBytes.
func (g Guard) UnescapeBytes(p []byte) ([]byte, error) {
	if err := g.checkSize(len(p)); err != nil {
		return nil, err
	}
	return UnescapeBytes(p), nil
}

// EscapeText treats p as UTF-8 text: it rejects invalid encodings with
// an invalid_utf8 issue (unlike EscapeBytes, which passes them through)
// and escapes the rest.
func (g Guard) EscapeText(p []byte) (string, error) {
	if err := g.checkSize(len(p)); err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", singleIssue(CodeInvalidUTF8, "", nil)
	}
	return Escape(string(p)), nil
}
