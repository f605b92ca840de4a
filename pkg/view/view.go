// Package view projects the list model's current results into a mount point
// whenever new data becomes available. Construction subscribes to the model's
// per-fetch notification and performs an initial render so a model that
// already holds data shows up immediately.
package view

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-programlist/pkg/list"
	"github.com/goliatone/go-programlist/pkg/render"
	"github.com/goliatone/go-programlist/pkg/renderers/vanilla"
)

// Option customises the view configuration.
type Option func(*ListView)

// WithRenderer injects the renderer used to produce markup. Defaults to the
// vanilla HTML renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(v *ListView) {
		if renderer != nil {
			v.renderer = renderer
		}
	}
}

// WithMount injects the mount point. Defaults to an in-memory Fragment bound
// to DefaultMountSelector.
func WithMount(mount Mount) Option {
	return func(v *ListView) {
		if mount != nil {
			v.mount = mount
		}
	}
}

// WithRenderOptions sets the per-render options passed to the renderer.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(v *ListView) {
		v.options = options
	}
}

// WithLogger injects the logger used when a notification-driven render
// fails. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *ListView) {
		v.logger = logger
	}
}

// ListView renders the model's result set into its mount point, re-rendering
// once per completed fetch.
type ListView struct {
	model    *list.Model
	renderer render.Renderer
	mount    Mount
	options  render.RenderOptions
	logger   zerolog.Logger

	mu          sync.Mutex
	destroyed   bool
	unsubscribe func()
}

// New constructs a ListView bound to model, applies the options, subscribes
// to the model's notification, and performs the initial render (a no-op when
// no data has arrived yet).
func New(model *list.Model, options ...Option) (*ListView, error) {
	if model == nil {
		return nil, errors.New("view: model is required")
	}

	v := &ListView{
		model:  model,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	if v.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, err
		}
		v.renderer = renderer
	}
	if v.mount == nil {
		v.mount = NewFragment(DefaultMountSelector)
	}

	v.unsubscribe = model.Subscribe(func(snapshot list.Snapshot) {
		if err := v.renderSnapshot(context.Background(), snapshot); err != nil {
			v.logger.Error().Err(err).Msg("program list render failed")
		}
	})

	if err := v.Render(context.Background()); err != nil {
		v.logger.Error().Err(err).Msg("initial program list render failed")
	}
	return v, nil
}

// MustNew panics when construction fails.
func MustNew(model *list.Model, options ...Option) *ListView {
	v, err := New(model, options...)
	if err != nil {
		panic(err)
	}
	return v
}

// Render projects the model's current snapshot into the mount point. When
// the reported count is not positive the render is a no-op: whatever markup
// a prior render produced stays in place.
func (v *ListView) Render(ctx context.Context) error {
	return v.renderSnapshot(ctx, v.model.Snapshot())
}

func (v *ListView) renderSnapshot(ctx context.Context, snapshot list.Snapshot) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return nil
	}
	renderer := v.renderer
	mount := v.mount
	options := v.options
	v.mu.Unlock()

	if snapshot.Count <= 0 {
		return nil
	}

	markup, err := renderer.Render(ctx, render.ListContext{
		Programs: snapshot.Programs,
		Count:    snapshot.Count,
	}, options)
	if err != nil {
		return err
	}
	return mount.Replace(markup)
}

// Mount returns the view's mount point.
func (v *ListView) Mount() Mount {
	return v.mount
}

// Destroy removes the rendered markup and detaches the model subscription.
// It is idempotent, and model updates after Destroy never render.
func (v *ListView) Destroy() {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return
	}
	v.destroyed = true
	unsubscribe := v.unsubscribe
	v.unsubscribe = nil
	v.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if err := v.mount.Clear(); err != nil {
		v.logger.Error().Err(err).Msg("program list mount clear failed")
	}
}
