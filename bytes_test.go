package htmlsafe_test

import (
	"bytes"
	"testing"

	htmlsafe "github.com/reoring/htmlsafe"
)

func TestEscapeBytes_Basic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "hello"},
		{`<>&"'`, "&lt;&gt;&amp;&quot;&#x27;"},
		{"<b>x</b>", "&lt;b&gt;x&lt;/b&gt;"},
	}
	for _, c := range cases {
		if got := htmlsafe.EscapeBytes([]byte(c.in)); string(got) != c.want {
			t.Fatalf("EscapeBytes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeBytes_InvalidEncodingPassesThrough(t *testing.T) {
	in := []byte{0xff, '<', 0xfe, 0x80, '&'}
	want := append([]byte{0xff}, []byte("&lt;")...)
	want = append(want, 0xfe, 0x80)
	want = append(want, []byte("&amp;")...)
	if got := htmlsafe.EscapeBytes(in); !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEscapeBytes_FastPathSharesBuffer(t *testing.T) {
	in := []byte("nothing to escape, even with \xff invalid bytes")
	got := htmlsafe.EscapeBytes(in)
	if len(got) != len(in) || &got[0] != &in[0] {
		t.Fatalf("fast path must return the input slice unchanged")
	}
}

func TestUnescapeBytes_ReducedEntitySet(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"&amp;&lt;&gt;&quot;&#x27;", `&<>"'`},
		{"&#34;&#39;&apos;", `"''`},
		{"&#38;&#60;&#62;", "&<>"},
		{"a&amp;b", "a&b"},
		// Outside the reduced set: untouched at the byte level.
		{"&copy;", "&copy;"},
		{"&#x3C;", "&#x3C;"},
		{"&notreal;", "&notreal;"},
		{"&", "&"},
	}
	for _, c := range cases {
		if got := htmlsafe.UnescapeBytes([]byte(c.in)); string(got) != c.want {
			t.Fatalf("UnescapeBytes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnescapeBytes_InvalidEncodingPassesThrough(t *testing.T) {
	in := []byte{0xff, '&', 'a', 'm', 'p', ';', 0xfe}
	want := []byte{0xff, '&', 0xfe}
	if got := htmlsafe.UnescapeBytes(in); !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnescapeBytes_FastPathSharesBuffer(t *testing.T) {
	in := []byte("no ampersand \xff here")
	got := htmlsafe.UnescapeBytes(in)
	if len(got) != len(in) || &got[0] != &in[0] {
		t.Fatalf("fast path must return the input slice unchanged")
	}
}

func TestBytes_RoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(`<script>alert('xss')</script>`),
		{0xff, '<', 0xfe, '\'', '&'},
		[]byte("plain"),
	}
	for _, c := range cases {
		if got := htmlsafe.UnescapeBytes(htmlsafe.EscapeBytes(c)); !bytes.Equal(got, c) {
			t.Fatalf("round trip of %v yielded %v", c, got)
		}
	}
}
