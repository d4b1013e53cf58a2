package ruleset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLParser implements Parser for TOML documents. TOML has no null, so
// checks on nil values need YAML or JSON.
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) Parse(ctx context.Context, content string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrTOMLParsingCancelled, err)
	}

	var doc Document
	md, err := toml.Decode(content, &doc)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown field %s", ErrFailedToParseTOML, undecoded[0])
	}
	return finish(&doc)
}

func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "toml")
}
