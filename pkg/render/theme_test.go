package render

import (
	"testing"

	theme "github.com/goliatone/go-theme"
)

type stubSelector struct {
	selection *theme.Selection
	err       error
}

func (s *stubSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, s.err
}

func TestResolveTheme_MergesVariantOverBase(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#123456",
			"surface": "#ffffff",
		},
		Templates: map[string]string{
			"list.item": "themes/acme/item.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"stylesheet": "theme.dark.css",
					},
				},
			},
		},
	}

	selector := &stubSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	cfg, err := ResolveTheme(selector, "acme", "dark", map[string]string{
		"list.empty": "builtin/empty.tmpl",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected config")
	}

	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token must win, got %s", cfg.Tokens["brand"])
	}
	if cfg.Tokens["surface"] != "#ffffff" {
		t.Fatalf("base token lost, got %s", cfg.Tokens["surface"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.Partials["list.item"] != "themes/acme/item.tmpl" {
		t.Fatalf("base partial lost, got %s", cfg.Partials["list.item"])
	}
	if cfg.Partials["list.empty"] != "builtin/empty.tmpl" {
		t.Fatalf("fallback partial not applied, got %s", cfg.Partials["list.empty"])
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("unexpected asset url: %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset should resolve empty, got %s", got)
	}
}

func TestResolveTheme_NilSelector(t *testing.T) {
	cfg, err := ResolveTheme(nil, "acme", "", nil)
	if err != nil || cfg != nil {
		t.Fatalf("nil selector should resolve to nothing, got %v/%v", cfg, err)
	}
}

func TestCSSVarsStyle_Deterministic(t *testing.T) {
	cfg := &theme.RendererConfig{CSSVars: map[string]string{
		"--b": "2",
		"--a": "1",
	}}
	if got := CSSVarsStyle(cfg); got != "--a:1;--b:2;" {
		t.Fatalf("unexpected style: %s", got)
	}
	if got := CSSVarsStyle(nil); got != "" {
		t.Fatalf("nil config should render empty style, got %q", got)
	}
}
