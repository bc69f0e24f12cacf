// Package config loads hawk.toml, the optional project-wide settings file
// the CLI checks for next to the source file it's compiling. The
// Load/applyDefaults shape and the toml.DecodeFile call are grounded on
// pkg/core/config.Load from the msto63-mDW example pack.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is hawk.toml's schema. Every field is optional; zero values fall
// back to the CLI's own built-in defaults.
type Config struct {
	Debug   DebugConfig   `toml:"debug"`
	Cache   CacheConfig   `toml:"cache"`
	Verbose bool          `toml:"verbose"`
}

// DebugConfig controls the default `-debug`/`-format` behavior when the
// CLI flags of the same name are left unset.
type DebugConfig struct {
	Stage  string `toml:"stage"`  // "ast" | "symtab" | "tymap" | "bytecode"
	Format string `toml:"format"` // "text" | "yaml"
}

// CacheConfig controls the `.bc` bytecode sidecar cache.
type CacheConfig struct {
	Disabled bool `toml:"disabled"`
}

// Default returns the settings the CLI uses when no hawk.toml exists.
func Default() Config {
	return Config{Debug: DebugConfig{Format: "text"}}
}

// Load reads and parses path. A missing file is not an error: it returns
// Default() unchanged, since hawk.toml is optional.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Debug.Format == "" {
		cfg.Debug.Format = "text"
	}
	return cfg, nil
}
