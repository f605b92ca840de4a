// Package template defines the engine seam between list renderers and the
// underlying template system. The pongo2-backed implementation lives in the
// gotemplate subpackage.
package template
