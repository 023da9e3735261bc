// Package config loads user preferences for the treemap CLI from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/treemap/config.toml (falling back to
// ~/.config/treemap/config.toml). Every key is optional; missing keys keep
// their defaults and a missing file is not an error:
//
//	width = 1280
//	height = 800
//	resize_step = 0.01
//	seed = 42
//	ignore = [".git", "node_modules", "*.tmp"]
//	follow_symlinks = false
//	cache_ttl = "72h"
//
// Command-line flags override file values.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/treemap/pkg/errors"
)

const appName = "treemap"

// Default values.
const (
	DefaultWidth      = 1024
	DefaultHeight     = 768
	DefaultResizeStep = 0.01
	DefaultCacheTTL   = 7 * 24 * time.Hour
)

// Config holds user preferences.
type Config struct {
	// Width and Height size rendered output, in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// ResizeStep is the fraction the grow and shrink keys change a leaf by.
	ResizeStep float64 `toml:"resize_step"`

	// Seed fixes node colours; zero means random.
	Seed uint64 `toml:"seed"`

	// Ignore lists base-name glob patterns skipped while scanning.
	Ignore []string `toml:"ignore"`

	FollowSymlinks bool     `toml:"follow_symlinks"`
	CacheTTL       Duration `toml:"cache_ttl"`
}

// Duration is a time.Duration written as a Go duration string ("36h").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		ResizeStep: DefaultResizeStep,
		CacheTTL:   Duration{DefaultCacheTTL},
	}
}

// Path returns the config file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result. Unknown
// keys are rejected so that typos do not pass silently.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := apperrors.ValidateDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if err := apperrors.ValidateResizeStep(c.ResizeStep); err != nil {
		return err
	}
	for _, p := range c.Ignore {
		if err := apperrors.ValidateIgnorePattern(p); err != nil {
			return err
		}
	}
	if c.CacheTTL.Duration < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "cache_ttl cannot be negative")
	}
	return nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Create writes the defaults to path, creating parent directories. An
// existing file is left alone unless force is set.
func Create(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.Wrap(apperrors.ErrCodePermission, err, "create %s", filepath.Dir(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodePermission, err, "create %s", path)
	}
	if err := Default().Write(f); err != nil {
		f.Close()
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", path)
	}
	return f.Close()
}
