package condition

import (
	"log/slog"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultArgumentName is used when Requires or Ensures is called without a name.
const DefaultArgumentName = "value"

type settings struct {
	locale       language.Tag
	argumentName string
	logger       *slog.Logger
	// printer formats values for locale; rebuilt only when the locale changes.
	printer *message.Printer
}

// Option configures package-wide settings.
type Option func(*settings)

// WithLocale sets the locale used to format values inside messages.
func WithLocale(tag language.Tag) Option {
	return func(s *settings) { s.locale = tag }
}

// WithDefaultArgumentName replaces "value" as the name given to unnamed
// validators. Empty names are ignored.
func WithDefaultArgumentName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.argumentName = name
		}
	}
}

// WithLogger sets the logger for setup-time diagnostics such as error type
// bindings. Validation failures are never logged. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

var active atomic.Pointer[settings]

func init() {
	active.Store(defaultSettings())
}

func defaultSettings() *settings {
	return &settings{
		locale:       language.English,
		argumentName: DefaultArgumentName,
		logger:       slog.New(slog.DiscardHandler),
		printer:      message.NewPrinter(language.English),
	}
}

func current() *settings {
	return active.Load()
}

// Configure applies options on top of the current settings. Validators
// created before the call keep the argument name they were given.
func Configure(opts ...Option) {
	for {
		prev := active.Load()
		next := *prev
		for _, opt := range opts {
			opt(&next)
		}
		if next.locale != prev.locale {
			next.printer = message.NewPrinter(next.locale)
		}
		if active.CompareAndSwap(prev, &next) {
			return
		}
	}
}

// Reset restores the default settings.
func Reset() {
	active.Store(defaultSettings())
}
