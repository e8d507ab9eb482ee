package entity

import "testing"

func TestNamed_ReservedCharacters(t *testing.T) {
	cases := []struct {
		name string
		want rune
	}{
		{"amp", '&'},
		{"lt", '<'},
		{"gt", '>'},
		{"quot", '"'},
		{"apos", '\''},
	}
	for _, c := range cases {
		got, ok := Named(c.name)
		if !ok || got != c.want {
			t.Fatalf("Named(%q) = %q, %v; want %q", c.name, got, ok, c.want)
		}
	}
}

func TestNamed_CuratedSet(t *testing.T) {
	cases := []struct {
		name string
		want rune
	}{
		{"euro", '€'},
		{"copy", '©'},
		{"trade", '™'},
		{"nbsp", ' '},
		{"rarr", '→'},
		{"mdash", '—'},
	}
	for _, c := range cases {
		got, ok := Named(c.name)
		if !ok || got != c.want {
			t.Fatalf("Named(%q) = %q, %v; want %q", c.name, got, ok, c.want)
		}
	}
}

func TestNamed_ExactMatchOnly(t *testing.T) {
	for _, name := range []string{"", "AMP", "Amp", "amp;", "&amp", "ampx", "unknown"} {
		if _, ok := Named(name); ok {
			t.Fatalf("Named(%q) unexpectedly matched", name)
		}
	}
}
