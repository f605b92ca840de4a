package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-render data that renderers can use to customise
// their output without touching the fetch pipeline.
type RenderOptions struct {
	// Classes overrides the semantic chrome classes emitted around the list
	// markup, keyed by slot name (list, item, empty). Missing keys fall back
	// to the renderer defaults.
	Classes map[string]string

	// EmptyMessage is shown by renderers that choose to display an empty
	// state instead of suppressing output. The default HTML renderer renders
	// nothing for an empty list, matching the view's no-op contract.
	EmptyMessage string

	// Theme carries a resolved go-theme configuration: design tokens become
	// CSS custom properties and partial overrides can replace built-in
	// templates. Nil means unthemed output.
	Theme *theme.RendererConfig
}
