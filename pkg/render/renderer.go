package render

import (
	"context"

	"github.com/goliatone/go-programlist/pkg/program"
)

// ListContext is the input every renderer receives: the current result set in
// response order plus the total count reported by the API.
type ListContext struct {
	Programs []program.Program
	Count    int
}

// Renderer converts a ListContext into a byte representation (HTML, plain
// text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, list ListContext, options RenderOptions) ([]byte, error)
}
