package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"logistaff/internal/config"

	"github.com/rs/zerolog"
)

// New builds the process logger. Format "pretty" is for local development,
// anything else emits JSON.
func New(cfg config.LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "pretty") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop returns a disabled logger for tests and optional dependencies.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
