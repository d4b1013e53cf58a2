// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration and attribute helpers that keep
// key names consistent across the conditions tooling.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format
//   - WithLevel sets the minimum level; ParseLevel and ParseFormat turn
//     configuration strings into options
//   - WithEnvironment applies development, staging or production defaults
//   - WithAttr attaches static attributes
//   - WithContextExtractors / WithContextValue inject attributes pulled from
//     context.Context on every record, for example a run id
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler for the configured
// Format. When context extractors are registered the handler is wrapped by
// NewContextHandler, which appends their attributes before delegating.
//
// Attribute helpers such as Argument, ValueType, ErrorType and Rule live in
// attr.go.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "condcheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "rules evaluated", logger.File(path))
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
