// Package config holds the ambient settings of a run: colour, parallelism
// and logging. They come from an optional YAML file and are overridden by
// command-line settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config
// file is given on the command line.
const EnvConfigPath = "LINEGREP_CONFIG"

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	File       string `yaml:"file"`         // rotate into this file instead of stderr
	Level      string `yaml:"level"`        // zerolog level name
	MaxSizeMB  int    `yaml:"max_size_mb"`  // rotate after this many megabytes
	MaxBackups int    `yaml:"max_backups"`  // rotated files to keep
	MaxAgeDays int    `yaml:"max_age_days"` // days to keep rotated files
	Compress   bool   `yaml:"compress"`     // gzip rotated files
}

// Config is the full set of ambient settings.
type Config struct {
	Color string    `yaml:"color"`
	Jobs  int       `yaml:"jobs"`
	Log   LogConfig `yaml:"log"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Color: ColorAuto,
		Jobs:  1,
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Locate returns the config file to read: the explicit path if set,
// otherwise $LINEGREP_CONFIG, otherwise "".
func Locate(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads path on top of the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document does not set.
// Unknown keys are an error.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Overrides are settings given on the command line. Zero values mean unset.
type Overrides struct {
	ConfigPath string
	Color      string
	Jobs       int
	LogFile    string
	LogLevel   string
}

// Apply copies every set override into c.
func (c *Config) Apply(o Overrides) {
	if o.Color != "" {
		c.Color = o.Color
	}
	if o.Jobs != 0 {
		c.Jobs = o.Jobs
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("invalid jobs %d (must be at least 1)", c.Jobs)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}
