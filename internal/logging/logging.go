// Package logging configures the process logger. Diagnostics for the user
// go to stderr through the reporter; this logger carries debug traces only
// and stays disabled unless --debug is set.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the process logger. With debug false the logger discards
// everything.
func New(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
