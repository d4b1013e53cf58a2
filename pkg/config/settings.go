package config

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/conditions/pkg/condition"
	"github.com/dmitrymomot/conditions/pkg/logger"
)

// Settings holds the process-wide defaults of the condition package and the
// logger used by tools built on it.
type Settings struct {
	// Locale is a BCP 47 tag used to format values inside messages.
	Locale string `env:"CONDITIONS_LOCALE" envDefault:"en"`
	// DefaultArgumentName names validators created without a name.
	DefaultArgumentName string `env:"CONDITIONS_DEFAULT_ARGUMENT_NAME" envDefault:"value"`
	// LogLevel and LogFormat override the environment preset when set.
	LogLevel  string `env:"CONDITIONS_LOG_LEVEL"`
	LogFormat string `env:"CONDITIONS_LOG_FORMAT"`
	// Env selects the logger preset: development, staging or production.
	Env string `env:"CONDITIONS_ENV" envDefault:"development"`
}

// LoggerOptions translates the logging settings into logger options. The
// environment preset is applied first so explicit level and format win.
func (s Settings) LoggerOptions(service string) ([]logger.Option, error) {
	opts := []logger.Option{logger.WithEnvironment(s.Env, service)}

	if s.LogLevel != "" {
		level, err := logger.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if s.LogFormat != "" {
		format, err := logger.ParseFormat(s.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return opts, nil
}

// Options translates the settings into condition options. log may be nil.
func (s Settings) Options(log *slog.Logger) ([]condition.Option, error) {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, s.Locale, err)
	}
	return []condition.Option{
		condition.WithLocale(tag),
		condition.WithDefaultArgumentName(s.DefaultArgumentName),
		condition.WithLogger(log),
	}, nil
}
