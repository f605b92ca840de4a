package template

import (
	"io"
)

// TemplateRenderer is the engine seam list renderers rely on. Keeping it an
// interface lets tests substitute a fake engine and lets callers plug in a
// different template system without touching renderer logic.
type TemplateRenderer interface {
	// Render resolves name as either a template path or inline template
	// content and renders it with data.
	Render(name string, data any, out ...io.Writer) (string, error)
	// RenderTemplate renders a named template from the configured loaders.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString parses and renders inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// RegisterFilter adds a named filter usable from templates.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	// GlobalContext seeds values available to every render.
	GlobalContext(data any) error
}
