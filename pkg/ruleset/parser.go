package ruleset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parser decodes a rule document from one file format.
type Parser interface {
	// Parse decodes content into a normalized Document.
	Parse(ctx context.Context, content string) (*Document, error)

	// SupportsFileExtension reports whether the parser handles ext, with or
	// without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser for the file's extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}

// ParseFile reads and parses a rule file, choosing the parser by extension.
func ParseFile(ctx context.Context, filename string) (*Document, error) {
	parser := NewParserForFile(filename)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(filename))
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parser.Parse(ctx, string(content))
}

// finish validates and normalizes a freshly decoded document.
func finish(doc *Document) (*Document, error) {
	if len(doc.Checks) == 0 {
		return nil, ErrEmptyDocument
	}
	doc.normalize()
	return doc, nil
}
