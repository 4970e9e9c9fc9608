// Package config loads the mcdm CLI configuration from a TOML file and the
// environment. Precedence, lowest first: defaults, file, environment, flags
// (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Environment variables.
const (
	EnvConfig  = "MCDM_CONFIG"
	EnvDataDir = "MCDM_DATA_DIR"
	EnvOutput  = "MCDM_OUTPUT"
	EnvLog     = "MCDM_LOG_LEVEL"
)

// Defaults.
const (
	DefaultDataDir   = "./data"
	DefaultOutput    = "table"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	DefaultDelimiter = ","
)

// ErrInvalid marks a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting the CLI reads.
type Config struct {
	DataDir string    `toml:"data_dir"`
	Output  string    `toml:"output"`
	Save    bool      `toml:"save"`
	Log     LogConfig `toml:"log"`
	CSV     CSVConfig `toml:"csv"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// CSVConfig controls CSV ingestion and export.
type CSVConfig struct {
	Delimiter string `toml:"delimiter"`
	Layout    string `toml:"layout"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads path (when non-empty, or $MCDM_CONFIG when path is empty),
// applies defaults and environment overrides, and validates the result.
// A missing file named explicitly is an error; no file at all is not.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Output {
	case "json", "yaml", "table":
	default:
		return fmt.Errorf("%w: output %q (want json, yaml or table)", ErrInvalid, c.Output)
	}
	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 || strings.ContainsAny(c.CSV.Delimiter, "\"\r\n\uFFFD") {
		return fmt.Errorf("%w: csv delimiter %q must be one character other than a quote or newline", ErrInvalid, c.CSV.Delimiter)
	}

	return nil
}

// Delimiter returns the CSV delimiter rune.
func (c Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)

	return r
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.CSV.Delimiter == "" {
		c.CSV.Delimiter = DefaultDelimiter
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		c.Log.Level = v
	}
}
