package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Argument records the validated argument name under the key "argument".
func Argument(name string) slog.Attr {
	return slog.String("argument", name)
}

// ValueType records a Go type name under the key "value_type".
func ValueType(name string) slog.Attr {
	return slog.String("value_type", name)
}

// ErrorType records the error type bound for failures under the key "error_type".
func ErrorType(name string) slog.Attr {
	return slog.String("error_type", name)
}

// Violation records a violation kind under the key "violation".
// Empty kinds produce an empty Attr.
func Violation(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("violation", kind)
}

// Rule records a rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// File records a file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Flag records a boolean under the given key.
func Flag(key string, v bool) slog.Attr {
	return slog.Bool(key, v)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
