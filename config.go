package htmlsafe

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration accepted by the CLI and the
// HTTP adapters.
type Config struct {
	// MaxInputBytes caps the size of a single input. Zero disables the
	// cap; the default is DefaultMaxInputBytes.
	MaxInputBytes int64 `yaml:"max_input_bytes"`
}

// DefaultConfig returns the recommended boundary configuration.
func DefaultConfig() Config {
	return Config{MaxInputBytes: DefaultMaxInputBytes}
}

// LoadConfig parses a YAML configuration document. Unset fields keep
// their defaults; a negative limit is rejected.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, singleIssue(CodeParseError, fmt.Sprintf("config: %v", err), nil)
	}
	if cfg.MaxInputBytes < 0 {
		return Config{}, singleIssue(CodeParseError,
			fmt.Sprintf("config: max_input_bytes must not be negative (got %d)", cfg.MaxInputBytes), nil)
	}
	return cfg, nil
}

// Guard builds the boundary guard described by the configuration.
func (c Config) Guard() Guard {
	return Guard{MaxInputBytes: c.MaxInputBytes}
}
