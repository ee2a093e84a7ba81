package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "pfl.toml"

// Config holds the tool's diagnostic output settings, loaded from an
// optional pfl.toml. Flags override file values; the core never reads it.
type Config struct {
	// Color controls ANSI styling: "auto", "always" or "never".
	Color string `toml:"color"`
	// MaxErrors caps how many diagnostics are printed; 0 means unlimited.
	MaxErrors int `toml:"max_errors"`
	// ContextLines is the number of source lines shown around each snippet.
	ContextLines int `toml:"context_lines"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:        "auto",
		MaxErrors:    0,
		ContextLines: 0,
	}
}

// Load reads the config from path, or from DefaultFile when path is empty.
// A missing default file is not an error; an explicitly named missing file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative")
	}
	if c.ContextLines < 0 {
		return fmt.Errorf("context_lines must not be negative")
	}
	return nil
}
