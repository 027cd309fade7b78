// Package logger configures the zerolog logger used across the CLI and engine.
// Logs go to stderr so that reports printed on stdout stay clean.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

//nolint:gochecknoglobals // Process-wide logger, replaced by Init
var Logger = log.Logger

// Config controls level, format and decoration of log output.
type Config struct {
	Level        string `json:"level"`  // debug, info, warn, error
	Format       string `json:"format"` // json or pretty
	TimeFormat   string `json:"time_format"`
	ReportCaller bool   `json:"report_caller"` // Add file:line to each entry
}

// New builds a logger writing to w. An unparseable level falls back to info.
func New(config Config, w io.Writer) (logger zerolog.Logger) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}

	output := w
	if config.Format == FormatPretty {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: config.TimeFormat,
		}
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if config.ReportCaller {
		ctx = ctx.Caller()
	}

	logger = ctx.Logger()
	return logger
}

// Init replaces the package and zerolog global loggers with one built from config.
func Init(config Config) {
	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	Logger = New(config, os.Stderr)
	log.Logger = Logger
}

// Debug starts a debug level event.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Error starts an error level event.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Ctx returns the logger carried by ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches the global logger to ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
