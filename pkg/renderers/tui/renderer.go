// Package tui renders the program list as an interactive terminal browser:
// the caller is prompted to pick an entry and the renderer emits a plain-text
// summary of the selection. The prompt layer sits behind PromptDriver so the
// selection logic is testable without a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-programlist/pkg/program"
	"github.com/goliatone/go-programlist/pkg/render"
)

// RendererName identifies this renderer in the registry.
const RendererName = "tui"

// ErrCancelled is returned when the user aborts the prompt.
var ErrCancelled = errors.New("tui: selection cancelled")

// Option configures the renderer before construction.
type Option func(*Renderer)

// WithDriver injects a custom prompt driver. The default drives a real
// terminal through survey.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPageSize caps the number of options shown per prompt page.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		r.pageSize = size
	}
}

// Renderer presents the list through terminal prompts.
type Renderer struct {
	driver   PromptDriver
	pageSize int
}

// Ensure the implementation satisfies the render contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the TUI renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return RendererName
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render prompts for a program and returns its summary. An empty list renders
// the empty message (or nothing) without prompting.
func (r *Renderer) Render(ctx context.Context, list render.ListContext, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if list.Count <= 0 || len(list.Programs) == 0 {
		if options.EmptyMessage != "" {
			return []byte(options.EmptyMessage + "\n"), nil
		}
		return nil, nil
	}

	labels := make([]string, 0, len(list.Programs))
	for _, entry := range list.Programs {
		labels = append(labels, promptLabel(entry))
	}

	choice, err := r.driver.Select(ctx, SelectConfig{
		Message:  fmt.Sprintf("Programs (%d total)", list.Count),
		Options:  labels,
		PageSize: r.pageSize,
	})
	if err != nil {
		return nil, err
	}
	if choice < 0 || choice >= len(list.Programs) {
		return nil, fmt.Errorf("tui: selection %d out of range", choice)
	}

	return []byte(summarize(list.Programs[choice])), nil
}

func promptLabel(entry program.Program) string {
	if entry.Subtitle == "" {
		return entry.Name
	}
	return entry.Name + " - " + entry.Subtitle
}

func summarize(entry program.Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (id %s)\n", entry.Name, entry.ID)
	if entry.Subtitle != "" {
		fmt.Fprintf(&b, "  %s\n", entry.Subtitle)
	}
	if entry.Category != "" {
		fmt.Fprintf(&b, "  category: %s\n", entry.Category)
	}
	if entry.Status != "" {
		fmt.Fprintf(&b, "  status: %s\n", entry.Status)
	}
	for _, org := range entry.Organizations {
		label := org.DisplayName
		if label == "" {
			label = org.Key
		}
		fmt.Fprintf(&b, "  organization: %s\n", label)
	}
	return b.String()
}
