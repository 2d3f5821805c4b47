// Package config loads the CLI's optional TOML settings file, following
// the BurntSushi/toml-backed loading style used elsewhere in this corpus:
// decode into a struct, fall back to documented defaults when the file is
// absent, and treat a malformed file as a startup error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultIndent is the indentation used for interactive block printing
	// when no config file (or no Indent entry) is present.
	DefaultIndent = "  "

	// FamilyV4 and FamilyV6 are the only accepted values of DefaultFamily.
	FamilyV4 = "v4"
	FamilyV6 = "v6"
)

// Config holds the settings an interactive or batch session may be run
// with. All fields are optional; Load fills an absent Indent from Default().
type Config struct {
	// Indent is prepended to each block line of a set result printed in
	// interactive mode.
	Indent string `toml:"indent"`

	// HistoryFile, if set, is the path an interactive session appends each
	// evaluated line to.
	HistoryFile string `toml:"history_file"`

	// DefaultFamily is advisory only: Load validates it, but nothing else
	// reads it, so it affects neither output nor evaluation semantics.
	// Must be FamilyV4 or FamilyV6 if set.
	DefaultFamily string `toml:"default_family"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Indent: DefaultIndent}
}

// Load reads and decodes the TOML file at path. A missing file is not an
// error: Default() is returned instead. A malformed file, or one naming an
// invalid DefaultFamily, is reported as an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.Indent == "" {
		cfg.Indent = DefaultIndent
	}

	if cfg.DefaultFamily != "" && cfg.DefaultFamily != FamilyV4 && cfg.DefaultFamily != FamilyV6 {
		return Config{}, fmt.Errorf("config: default_family must be %q or %q, got %q", FamilyV4, FamilyV6, cfg.DefaultFamily)
	}

	return cfg, nil
}
