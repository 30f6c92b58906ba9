// Package logger wraps zerolog with the constructors the service uses.
// Logger embeds zerolog.Logger, so the full zerolog API is available on it.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

type Logger struct {
	zerolog.Logger
}

// New builds a JSON logger writing to stdout, tagged with the given role
// (e.g. "api") so logs from different processes can be told apart.
func New(role string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{l}
}

// Nop returns a logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
