package gotemplate

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"list.tmpl": &fstest.MapFile{
			Data: []byte(`<ul>{% for p in programs %}<li>{{ p.name }}</li>{% endfor %}</ul>`),
		},
	}
}

func TestEngine_RenderTemplateFromFS(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	data := map[string]any{
		"programs": []map[string]any{
			{"name": "Intro"},
			{"name": "Advanced"},
		},
	}

	out, err := engine.RenderTemplate("list", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<ul><li>Intro</li><li>Advanced</li></ul>" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestEngine_RenderStringAndWriterFanout(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	out, err := engine.RenderString(`count: {{ count }}`, map[string]any{"count": 3}, &buf)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "count: 3" || buf.String() != "count: 3" {
		t.Fatalf("unexpected output: %q / %q", out, buf.String())
	}
}

func TestEngine_RenderDetectsInlineContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.Render(`{{ label }}`, map[string]any{"label": "inline"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "inline" {
		t.Fatalf("unexpected output: %s", out)
	}

	out, err = engine.Render("list", map[string]any{"programs": nil})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if out != "<ul></ul>" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithGlobalData(map[string]any{"brand": "Acme"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString(`{{ brand }}: {{ label }}`, map[string]any{"label": "programs"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Acme: programs" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestEngine_StructDataUsesWireNames(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	payload := struct {
		DisplayName string `json:"display_name"`
	}{DisplayName: "Programs"}

	out, err := engine.RenderString(`{{ display_name }}`, payload)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Programs" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNew_RequiresLoader(t *testing.T) {
	if _, err := New(); err == nil || !strings.Contains(err.Error(), "base dir or fs.FS") {
		t.Fatalf("expected loader configuration error, got %v", err)
	}
}
