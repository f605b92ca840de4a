package vanilla

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-programlist/pkg/program"
	"github.com/goliatone/go-programlist/pkg/render"
)

func renderList(t *testing.T, list render.ListContext, options render.RenderOptions) string {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), list, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_RendersEntriesInOrder(t *testing.T) {
	out := renderList(t, render.ListContext{
		Count: 2,
		Programs: []program.Program{
			{ID: "1", Name: "Intro"},
			{ID: "2", Name: "Advanced"},
		},
	}, render.RenderOptions{})

	intro := strings.Index(out, "Intro")
	advanced := strings.Index(out, "Advanced")
	if intro == -1 || advanced == -1 {
		t.Fatalf("expected both names in output:\n%s", out)
	}
	if intro > advanced {
		t.Fatalf("entries out of order:\n%s", out)
	}
	if !strings.Contains(out, `data-program-id="1"`) {
		t.Fatalf("expected id attribute in output:\n%s", out)
	}
	if !strings.Contains(out, `class="programlist"`) {
		t.Fatalf("expected default chrome class:\n%s", out)
	}
}

func TestRenderer_EmptyListRendersNothingByDefault(t *testing.T) {
	out := renderList(t, render.ListContext{Count: 0}, render.RenderOptions{})
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected empty output, got:\n%s", out)
	}
}

func TestRenderer_EmptyListWithMessage(t *testing.T) {
	out := renderList(t, render.ListContext{Count: 0}, render.RenderOptions{
		EmptyMessage: "No programs yet",
	})
	if !strings.Contains(out, "No programs yet") {
		t.Fatalf("expected empty message, got:\n%s", out)
	}
	if !strings.Contains(out, DefaultEmptyClass) {
		t.Fatalf("expected empty chrome class, got:\n%s", out)
	}
}

func TestRenderer_SanitizesRemoteText(t *testing.T) {
	out := renderList(t, render.ListContext{
		Count: 1,
		Programs: []program.Program{
			{ID: "1", Name: `<script>alert("x")</script>Intro`, Subtitle: "<b>bold</b> words"},
		},
	}, render.RenderOptions{})

	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Fatalf("markup leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "Intro") {
		t.Fatalf("text content lost:\n%s", out)
	}
}

func TestRenderer_ClassOverrides(t *testing.T) {
	out := renderList(t, render.ListContext{
		Count:    1,
		Programs: []program.Program{{ID: "1", Name: "Intro"}},
	}, render.RenderOptions{
		Classes: map[string]string{"list": "js-program-admin-list", "item": "js-program-row"},
	})

	if !strings.Contains(out, `class="js-program-admin-list"`) {
		t.Fatalf("list class override missing:\n%s", out)
	}
	if !strings.Contains(out, `class="js-program-row"`) {
		t.Fatalf("item class override missing:\n%s", out)
	}
}

func TestRenderer_ThemeCSSVars(t *testing.T) {
	out := renderList(t, render.ListContext{
		Count:    1,
		Programs: []program.Program{{ID: "1", Name: "Intro"}},
	}, render.RenderOptions{
		Theme: &theme.RendererConfig{CSSVars: map[string]string{"--brand": "#123456"}},
	})

	if !strings.Contains(out, `style="--brand:#123456;"`) {
		t.Fatalf("theme css vars missing:\n%s", out)
	}
}

func TestRenderer_OrganizationLabels(t *testing.T) {
	out := renderList(t, render.ListContext{
		Count: 1,
		Programs: []program.Program{{
			ID:   "1",
			Name: "Intro",
			Organizations: []program.Organization{
				{Key: "org-x", DisplayName: "Org X"},
				{Key: "org-y"},
			},
		}},
	}, render.RenderOptions{})

	if !strings.Contains(out, "Org X, org-y") {
		t.Fatalf("organization labels missing:\n%s", out)
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := MustNew()
	if renderer.Name() != RendererName {
		t.Fatalf("unexpected name: %s", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected content type: %s", renderer.ContentType())
	}
	if DefaultStylesheet() == "" {
		t.Fatalf("embedded stylesheet missing")
	}
}
