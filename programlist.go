// Package programlist wires the catalog loader, parser, list model, and view
// into a single entry point for rendering program lists fetched from a
// programs service.
package programlist

import (
	"context"
	"time"

	internalLoader "github.com/goliatone/go-programlist/internal/catalog/loader"
	internalParser "github.com/goliatone/go-programlist/internal/catalog/parser"
	"github.com/goliatone/go-programlist/pkg/catalog"
	"github.com/goliatone/go-programlist/pkg/list"
	"github.com/goliatone/go-programlist/pkg/program"
	"github.com/goliatone/go-programlist/pkg/render"
	"github.com/goliatone/go-programlist/pkg/view"
)

// Snapshot aliases the list model snapshot for callers that only import the
// root package.
type Snapshot = list.Snapshot

// RenderOptions aliases the per-render options consumed by renderers.
type RenderOptions = render.RenderOptions

// DefaultRequestTimeout bounds the built-in HTTP client used when no custom
// client is supplied.
const DefaultRequestTimeout = 10 * time.Second

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...catalog.LoaderOption) catalog.Loader {
	cfg := catalog.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...catalog.ParserOption) catalog.Parser {
	cfg := catalog.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewModel builds a list model with the default loader and parser wired in.
// Options may override either stage, the source, or the logger.
func NewModel(options ...list.Option) (*list.Model, error) {
	defaults := []list.Option{
		list.WithLoader(NewLoader(catalog.WithHTTPFallback(DefaultRequestTimeout))),
		list.WithParser(NewParser()),
	}
	return list.New(append(defaults, options...)...)
}

// MustNewModel panics when model construction fails.
func MustNewModel(options ...list.Option) *list.Model {
	m, err := NewModel(options...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewListView builds a view bound to model. When model is nil a default model
// is constructed first.
func NewListView(model *list.Model, options ...view.Option) (*view.ListView, error) {
	if model == nil {
		built, err := NewModel()
		if err != nil {
			return nil, err
		}
		model = built
	}
	return view.New(model, options...)
}

// FetchHTML fetches the program page at endpoint and renders it with the
// default HTML renderer. It is the simplest entry point for callers that just
// want a markup fragment.
func FetchHTML(ctx context.Context, endpoint string, options ...list.Option) ([]byte, error) {
	opts := options
	if endpoint != "" {
		opts = append([]list.Option{list.WithSource(catalog.SourceFromURL(endpoint))}, options...)
	}
	model, err := NewModel(opts...)
	if err != nil {
		return nil, err
	}
	v, err := view.New(model)
	if err != nil {
		return nil, err
	}
	if err := model.GetList(ctx); err != nil {
		return nil, err
	}
	fragment, ok := v.Mount().(*view.Fragment)
	if !ok {
		return nil, nil
	}
	return fragment.Contents(), nil
}

// FetchPrograms fetches the program page at endpoint and returns the ordered
// collection without rendering.
func FetchPrograms(ctx context.Context, endpoint string, options ...list.Option) (*program.Collection, error) {
	opts := options
	if endpoint != "" {
		opts = append([]list.Option{list.WithSource(catalog.SourceFromURL(endpoint))}, options...)
	}
	model, err := NewModel(opts...)
	if err != nil {
		return nil, err
	}
	if err := model.GetList(ctx); err != nil {
		return nil, err
	}
	return model.Results(), nil
}
