package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeRenderer struct {
	name string
}

func (f fakeRenderer) Name() string        { return f.name }
func (f fakeRenderer) ContentType() string { return "text/plain" }
func (f fakeRenderer) Render(context.Context, ListContext, RenderOptions) ([]byte, error) {
	return []byte(f.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(fakeRenderer{name: "vanilla"})

	renderer, err := registry.Get("vanilla")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected renderer: %s", renderer.Name())
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(fakeRenderer{name: "vanilla"})

	if err := registry.Register(fakeRenderer{name: "vanilla"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_RejectsAnonymousRenderer(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(fakeRenderer{}); err == nil {
		t.Fatalf("expected error for empty renderer name")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(fakeRenderer{name: "tui"})
	registry.MustRegister(fakeRenderer{name: "vanilla"})
	registry.MustRegister(fakeRenderer{name: "html"})

	if diff := cmp.Diff([]string{"html", "tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("tui") || registry.Has("preact") {
		t.Fatalf("membership checks failed")
	}
}
