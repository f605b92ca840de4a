package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-programlist/pkg/program"
	"github.com/goliatone/go-programlist/pkg/render"
	rendertemplate "github.com/goliatone/go-programlist/pkg/render/template"
	gotemplate "github.com/goliatone/go-programlist/pkg/render/template/gotemplate"
)

// RendererName identifies this renderer in the registry.
const RendererName = "vanilla"

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the default HTML fragment for a program list.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// Ensure the implementation satisfies the render contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

// MustNew panics when construction fails.
func MustNew(options ...Option) *Renderer {
	renderer, err := New(options...)
	if err != nil {
		panic(err)
	}
	return renderer
}

func (r *Renderer) Name() string {
	return RendererName
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the list fragment. An empty list renders the empty-state
// message when one is configured, otherwise no output at all so callers can
// keep prior markup in place.
func (r *Renderer) Render(ctx context.Context, list render.ListContext, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	templatePath := "templates/" + listTemplateName
	if theme := options.Theme; theme != nil {
		if partial, ok := theme.Partials["list"]; ok && partial != "" {
			templatePath = partial
		}
	}

	out, err := r.templates.RenderTemplate(templatePath, buildListData(list, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render list: %w", err)
	}
	return []byte(out), nil
}

func buildListData(list render.ListContext, options render.RenderOptions) map[string]any {
	programs := make([]map[string]any, 0, len(list.Programs))
	for _, entry := range list.Programs {
		programs = append(programs, programData(entry))
	}

	return map[string]any{
		"programs":      programs,
		"count":         list.Count,
		"classes":       chromeClasses(options.Classes),
		"empty_message": sanitizeText(options.EmptyMessage),
		"theme_style":   render.CSSVarsStyle(options.Theme),
	}
}

func programData(entry program.Program) map[string]any {
	data := map[string]any{
		"id":       entry.ID,
		"name":     sanitizeText(entry.Name),
		"subtitle": sanitizeText(entry.Subtitle),
		"category": sanitizeText(entry.Category),
		"status":   entry.Status,
	}

	if len(entry.Organizations) > 0 {
		orgs := make([]string, 0, len(entry.Organizations))
		for _, org := range entry.Organizations {
			label := org.DisplayName
			if label == "" {
				label = org.Key
			}
			orgs = append(orgs, sanitizeText(label))
		}
		data["organizations"] = orgs
	}
	return data
}
