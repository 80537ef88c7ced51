package retry

import (
	"io"
	"log/slog"

	"backoff-timer/internal/config"
	"backoff-timer/internal/logger"
)

// Policy bounds how long a Retrier keeps retrying.
type Policy struct {
	// Ceiling is the cumulative number of seconds spent waiting between attempts.
	Ceiling uint64
	// LogLevel is used by Logger: debug, info, warn or error.
	LogLevel string
}

// PolicyFromEnv reads prefix+CEILING and prefix+LOG_LEVEL, after loading any
// .env files given.
func PolicyFromEnv(prefix string, files ...string) (Policy, error) {
	cfg, err := config.Load(prefix, files...)
	if err != nil {
		return Policy{}, err
	}
	return Policy{Ceiling: cfg.Ceiling, LogLevel: cfg.LogLevel}, nil
}

// Logger returns a JSON logger writing to w at the policy's level.
func (p Policy) Logger(w io.Writer) *slog.Logger {
	return logger.New(w, p.LogLevel)
}
