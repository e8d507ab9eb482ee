package htmlsafe_test

import (
	"testing"

	htmlsafe "github.com/reoring/htmlsafe"
)

func TestLoadConfig_Basic(t *testing.T) {
	cfg, err := htmlsafe.LoadConfig([]byte("max_input_bytes: 1024\n"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.MaxInputBytes != 1024 {
		t.Fatalf("got %d, want 1024", cfg.MaxInputBytes)
	}
	g := cfg.Guard()
	if _, err := g.Escape(string(make([]byte, 2048))); err == nil {
		t.Fatalf("expected guard built from config to reject oversized input")
	}
}

func TestLoadConfig_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := htmlsafe.LoadConfig(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.MaxInputBytes != htmlsafe.DefaultMaxInputBytes {
		t.Fatalf("got %d, want default %d", cfg.MaxInputBytes, htmlsafe.DefaultMaxInputBytes)
	}
}

func TestLoadConfig_NegativeRejected(t *testing.T) {
	_, err := htmlsafe.LoadConfig([]byte("max_input_bytes: -1\n"))
	iss, ok := htmlsafe.AsIssues(err)
	if !ok || iss[0].Code != htmlsafe.CodeParseError {
		t.Fatalf("expected parse_error Issues, got %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	if _, err := htmlsafe.LoadConfig([]byte(":\n  - [")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}
