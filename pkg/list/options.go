package list

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-programlist/pkg/catalog"
)

// Option customises the model configuration.
type Option func(*Model)

// WithLoader injects the loader used to fetch the list resource.
func WithLoader(loader catalog.Loader) Option {
	return func(m *Model) {
		if loader != nil {
			m.loader = loader
		}
	}
}

// WithParser injects the parser used to decode fetched payloads.
func WithParser(parser catalog.Parser) Option {
	return func(m *Model) {
		if parser != nil {
			m.parser = parser
		}
	}
}

// WithSource overrides the list resource location. Defaults to the
// /api/v1/programs/ endpoint.
func WithSource(src catalog.Source) Option {
	return func(m *Model) {
		if src != nil {
			m.source = src
		}
	}
}

// WithLogger injects the logger used on the failure path. Defaults to a
// no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}
