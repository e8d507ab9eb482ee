package htmlsafe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/htmlsafe/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInputTooLarge = "input_too_large"
	CodeInvalidUTF8   = "invalid_utf8"
	CodeParseError    = "parse_error"
)

// Issue represents a single boundary-contract violation. The transforms
// themselves are total and never produce issues; only Guard and the
// JSON helpers do.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"size":1024, "max":512})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of boundary errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. input_too_large: input exceeds limit
		fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// singleIssue builds a one-issue Issues value. The base message is
// resolved through the i18n translator by code; detail, when non-empty,
// is appended after the localized text.
func singleIssue(code, detail string, params map[string]any) Issues {
	msg := i18n.T(code, nil)
	if detail != "" {
		msg += ": " + detail
	}
	return AppendIssues(nil, Issue{Code: code, Message: msg, Params: params})
}
