// Package config handles configuration loading and defaults.
//
// Values are applied in priority order:
//  1. Defaults
//  2. TOML config file (explicit path, $TODO_CONFIG, or the user config dir)
//  3. Environment variables
//  4. CLI flags (applied by the caller)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	AppName  = "todo"
	FileName = "config.toml"
)

// Output formats.
const (
	FormatPanel = "panel"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default values.
const (
	DefaultFormat    = FormatPanel
	DefaultTheme     = "classic"
	DefaultColor     = ColorAuto
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for the CLI.
type Config struct {
	Format    string `toml:"format"`
	Theme     string `toml:"theme"`
	Color     string `toml:"color"`
	Group     bool   `toml:"group"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Path of the file the values were read from, if any.
	Source string `toml:"-"`
}

// Default returns a Config with every field at its default.
func Default() *Config {
	return &Config{
		Format:    DefaultFormat,
		Theme:     DefaultTheme,
		Color:     DefaultColor,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load builds a Config from defaults, the config file and the environment.
// An explicit path must exist; the implicit locations are optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("TODO_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = userConfigFile()
	}

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Source = path
	return nil
}

func userConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, FileName)
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// Validate normalizes enum fields and rejects unknown values.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if err := oneOf("format", c.Format, FormatPanel, FormatPlain, FormatJSON); err != nil {
		return err
	}
	if err := oneOf("theme", c.Theme, "classic", "neon", "mono"); err != nil {
		return err
	}
	if err := oneOf("color", c.Color, ColorAuto, ColorAlways, ColorNever); err != nil {
		return err
	}
	if err := oneOf("log_level", c.LogLevel, "debug", "info", "warn", "warning", "error"); err != nil {
		return err
	}
	return oneOf("log_format", c.LogFormat, "text", "json", "logfmt")
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q, must be one of: %s", field, value, strings.Join(allowed, ", "))
}
