// Package logpkg builds the application logger and attaches it to contexts.
package logpkg

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-petr/pet-atm/pkg/configpkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New creates the application logger for the given config.
func New(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var (
		output   io.Writer = os.Stderr
		logLevel           = zerolog.InfoLevel // default to INFO
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environment == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// WithSession returns ctx carrying logger stamped with a fresh session id.
func WithSession(ctx context.Context, logger zerolog.Logger) (context.Context, string) {
	sessionID := uuid.NewString()

	l := logger.With().Str("session_id", sessionID).Logger()

	return l.WithContext(ctx), sessionID
}
