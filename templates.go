package programlist

import (
	"io/fs"

	vanilla "github.com/goliatone/go-programlist/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the built-in stylesheet bundle shipped with the
// vanilla renderer.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}

// DefaultStylesheet returns the CSS shipped with the vanilla renderer.
func DefaultStylesheet() string {
	return vanilla.DefaultStylesheet()
}
