package catalog

import (
	"context"

	"github.com/goliatone/go-programlist/pkg/program"
)

// Parser decodes a fetched Document into a program.Page. Implementations
// live under internal/catalog but satisfy this contract.
type Parser interface {
	Page(ctx context.Context, doc Document) (program.Page, error)
}

// ParserOptions configures payload decoding.
type ParserOptions struct {
	// ValidateSchema checks the payload against the embedded OpenAPI
	// description of the list endpoint before decoding. Disabled by default:
	// the model's contract is to degrade silently on sparse payloads, and
	// validation turns those into hard errors.
	ValidateSchema bool
}

// ParserOption mutates ParserOptions prior to construction.
type ParserOption func(*ParserOptions)

// WithSchemaValidation toggles OpenAPI response validation.
func WithSchemaValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ValidateSchema = enabled
	}
}

// NewParserOptions applies a set of ParserOption values and returns the
// resulting configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
