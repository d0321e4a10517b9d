// Package logger configures the process-wide zerolog logger for the
// planning services.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Setup replaces the global logger with one configured for the given
// server mode. Debug mode gets human-readable console output at debug
// level; any other mode gets JSON at info level.
func Setup(mode string) {
	log.Logger = New(mode, os.Stdout)
	zerolog.SetGlobalLevel(log.Logger.GetLevel())
}

// New builds a logger writing to out, tagged with the service name so
// aggregated logs can be filtered per process.
func New(mode string, out io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if mode == "debug" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "2006-01-02 15:04:05",
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "restockly").
		Logger()
}
