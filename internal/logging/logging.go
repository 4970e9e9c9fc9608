// Package logging builds the zap loggers used by the CLI, the analysis
// runner and the result store.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat indicates a log format other than console or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config selects level, encoding and destination.
type Config struct {
	Level  string    // debug | info | warn | error; empty means info
	Format string    // console | json; empty means console
	Output io.Writer // nil means os.Stderr
}

// New returns a logger for cfg. Timestamps are ISO-8601 in both encodings.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level)), nil
}

// Verbosity maps the CLI's -v count to a level name.
func Verbosity(v int) string {
	switch {
	case v <= 0:
		return "warn"
	case v == 1:
		return "info"
	default:
		return "debug"
	}
}
