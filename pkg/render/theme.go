package render

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ResolveTheme asks the selector for the named theme/variant and flattens the
// selection into the RendererConfig renderers consume: variant tokens and
// templates override the base manifest, tokens are mirrored as CSS custom
// properties, and asset lookups resolve against the manifest prefix.
// Fallback partials fill any template slot the theme leaves empty.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	manifest := selection.Manifest
	tokens := mergeStringMaps(manifest.Tokens, nil)
	partials := mergeStringMaps(manifest.Templates, nil)
	assetFiles := mergeStringMaps(manifest.Assets.Files, nil)

	if selection.Variant != "" {
		if v, ok := manifest.Variants[selection.Variant]; ok {
			tokens = mergeStringMaps(tokens, v.Tokens)
			partials = mergeStringMaps(partials, v.Templates)
			assetFiles = mergeStringMaps(assetFiles, v.Assets.Files)
		}
	}

	for slot, partial := range fallbacks {
		if _, ok := partials[slot]; !ok {
			partials[slot] = partial
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	prefix := strings.TrimRight(manifest.Assets.Prefix, "/")
	assetURL := func(key string) string {
		file, ok := assetFiles[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return prefix + "/" + file
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetURL,
	}, nil
}

// CSSVarsStyle renders a theme's CSS custom properties as an inline style
// declaration, sorted for deterministic output.
func CSSVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(":")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";")
	}
	return b.String()
}

func mergeStringMaps(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}
