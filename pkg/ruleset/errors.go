package ruleset

import "errors"

var (
	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON rule document")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML rule document")
	ErrTOMLParsingCancelled = errors.New("toml parsing cancelled")
	ErrFailedToParseTOML    = errors.New("failed to parse TOML rule document")
	ErrEmptyDocument        = errors.New("rule document has no checks")

	// Files
	ErrUnsupportedFormat = errors.New("unsupported rule file format")
	ErrFailedToReadFile  = errors.New("failed to read rule file")

	// Evaluation. These describe a broken document, not a violated condition.
	ErrUnknownRule     = errors.New("unknown rule")
	ErrUnknownKind     = errors.New("unknown value kind")
	ErrUnknownIntent   = errors.New("unknown intent")
	ErrInvalidArgument = errors.New("invalid rule argument")
)
