// Package config loads the variantgen.toml tool manifest.
//
// The manifest carries build-time switches that apply to a whole generation
// run, most importantly the all-or-nothing deref toggle. Command-line flags
// override manifest values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up from the working directory upward.
const ManifestName = "variantgen.toml"

// Config is the decoded tool manifest.
type Config struct {
	// Output is the directory generated packages are written into.
	Output string `toml:"output"`

	// Schemas lists schema files to process when none are given on the
	// command line.
	Schemas []string `toml:"schemas"`

	// Deref globally enables deref-field synthesis. Nil means the default
	// (enabled); false disables the deref path for the whole run.
	Deref *bool `toml:"deref"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Output: "./generated",
	}
}

// DerefEnabled resolves the deref switch, defaulting to enabled.
func (c Config) DerefEnabled() bool {
	return c.Deref == nil || *c.Deref
}

// Find walks from startDir upward looking for a manifest file. It returns
// the manifest path and true when found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// Load decodes a manifest file. Unknown keys are rejected so typos surface
// instead of silently using defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	// Output paths in the manifest are relative to the manifest location.
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(filepath.Dir(path), cfg.Output)
	}

	for i, s := range cfg.Schemas {
		if !filepath.IsAbs(s) {
			cfg.Schemas[i] = filepath.Join(filepath.Dir(path), s)
		}
	}

	return cfg, nil
}
