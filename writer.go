package htmlsafe

import "io"

// Writer escapes everything written to it before forwarding to the
// underlying io.Writer, using the byte-level entity set of EscapeBytes.
// It buffers nothing, so arbitrarily large documents stream through in
// constant memory.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer forwarding escaped output to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write escapes p and writes the result to the underlying writer. The
// returned count refers to p, as io.Writer requires.
func (e *Writer) Write(p []byte) (int, error) {
	last := 0
	for i := 0; i < len(p); i++ {
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
		if _, err := e.w.Write(p[last:i]); err != nil {
			return last, err
		}
		if _, err := io.WriteString(e.w, rep); err != nil {
			return i, err
		}
		last = i + 1
	}
	if _, err := e.w.Write(p[last:]); err != nil {
		return last, err
	}
	return len(p), nil
}
