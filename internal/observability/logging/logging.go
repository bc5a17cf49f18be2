package logging

import (
	"log/slog"
	"os"
)

// Environment selects the log output format.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags every log record with the emitting component.
type Module string

// NewHandler builds the slog handler for the service: human-readable
// text in dev, JSON everywhere else.
func NewHandler(level slog.Level, env Environment, module Module) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == EnvDev {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	if module != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("module", string(module)),
		})
	}

	return handler
}
