// Package log wraps zerolog with the project's conventions: a
// caarlos0/env-parsed config, short caller paths, and a package-level
// default logger the cmd binaries install once at startup.
package log

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ShortCallerMarshalFunc trims the caller path to its final component.
var ShortCallerMarshalFunc = func(_ uintptr, file string, line int) string {
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	return short + ":" + strconv.Itoa(line)
}

// Config is populated from the environment by caarlos0/env.
type Config struct {
	Level   string `env:"PROJECTIO_LOG_LEVEL" envDefault:"info"`
	Console bool   `env:"PROJECTIO_LOG_CONSOLE" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init installs a logger built from cfg as the package-level default. cmd
// binaries call this once at startup; engine packages never call it.
func Init(cfg *Config) {
	log.Logger = New(cfg)
}

// New builds a zerolog.Logger from cfg without touching the global default.
func New(cfg *Config) zerolog.Logger {
	zerolog.CallerMarshalFunc = ShortCallerMarshalFunc

	level := zerolog.InfoLevel
	if cfg != nil {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	var out zerolog.LevelWriter
	if cfg != nil && cfg.Console {
		out = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		out = zerolog.MultiLevelWriter(os.Stderr)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Caller().Logger()
}

// FromContext retrieves the logger attached to ctx, falling back to the
// global default if none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
