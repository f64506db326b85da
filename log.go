package serkey

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	rootLogger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	serialLogger  = rootLogger.With().Str("subsystem", "serial").Logger()
	inputLogger   = rootLogger.With().Str("subsystem", "input").Logger()
	encoderLogger = rootLogger.With().Str("subsystem", "encoder").Logger()
	sessionLogger = rootLogger.With().Str("subsystem", "session").Logger()
	statusLogger  = rootLogger.With().Str("subsystem", "status").Logger()
	metricsLogger = rootLogger.With().Str("subsystem", "metrics").Logger()
)

// Logger returns the process-wide logger.
func Logger() *zerolog.Logger {
	return &rootLogger
}

// SetLogLevel sets the global level from a name such as "info" or "trace".
func SetLogLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}
