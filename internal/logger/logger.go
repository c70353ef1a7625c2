// Package logger builds the zerolog loggers used by the command line tools.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// FormatConsole renders human readable, colorized lines.
	FormatConsole = "console"
	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"
)

const consoleTimeFormat = "15:04:05.000"

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Config describes a logger.
type Config struct {
	// Level is a zerolog level name, e.g. "debug" or "info". Empty means
	// info.
	Level string
	// Format is FormatConsole (the default) or FormatJSON.
	Format string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// New constructs a logger from cfg.
func New(cfg Config) (zerolog.Logger, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}
	var l zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: consoleTimeFormat,
		})
	case FormatJSON:
		l = zerolog.New(out)
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return l.Level(level).With().Timestamp().Logger(), nil
}
