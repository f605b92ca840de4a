// Package render exposes the rendering contracts for program lists: the
// Renderer interface, a thread-safe registry keyed by renderer name, and
// go-theme resolution helpers. Concrete renderers live under pkg/renderers.
package render
