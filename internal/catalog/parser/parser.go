package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-programlist/pkg/catalog"
	"github.com/goliatone/go-programlist/pkg/program"
)

// Parser implements catalog.Parser. Decoding is plain JSON; schema validation
// against the embedded OpenAPI description of the list endpoint is opt-in.
type Parser struct {
	options catalog.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ catalog.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options catalog.ParserOptions) catalog.Parser {
	return &Parser{options: options}
}

// Page decodes a fetched Document into a program.Page. Sparse payloads are
// tolerated: a missing results field decodes to an empty page and a missing
// count stays zero, so downstream rendering degrades to a no-op instead of
// surfacing an error.
func (p *Parser) Page(ctx context.Context, doc catalog.Document) (program.Page, error) {
	if err := ctx.Err(); err != nil {
		return program.Page{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return program.Page{}, errors.New("catalog parser: payload is empty")
	}

	if p.options.ValidateSchema {
		if err := validatePayload(raw); err != nil {
			return program.Page{}, fmt.Errorf("catalog parser: validate payload: %w", err)
		}
	}

	var page program.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return program.Page{}, fmt.Errorf("catalog parser: decode payload: %w", err)
	}
	return page, nil
}
