package programs

import (
	"context"
	"net/http"

	"github.com/goliatone/go-programlist/pkg/list"
	"github.com/goliatone/go-programlist/pkg/render"
)

// ListFunc produces the program set the handler serves. Implementations are
// expected to fetch fresh data; returning an error maps to a 502 response.
type ListFunc func(ctx context.Context) (render.ListContext, error)

// GuardFunc vets a request before any upstream work happens. A non-nil error
// rejects the request.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath     string
	Guard         GuardFunc
	List          ListFunc
	Renderer      render.Renderer
	RenderOptions render.RenderOptions
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath: "/programs",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/programs"
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithList(fn ListFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.List = fn
	}
}

// WithModel adapts a list model into the component's list function. Each
// request triggers a fetch; the snapshot installed by that fetch is served.
func WithModel(model *list.Model) OptionFn {
	return func(o *Options) {
		if o == nil || model == nil {
			return
		}
		o.List = func(ctx context.Context) (render.ListContext, error) {
			if err := model.GetList(ctx); err != nil {
				return render.ListContext{}, err
			}
			snapshot := model.Snapshot()
			return render.ListContext{
				Programs: snapshot.Programs,
				Count:    snapshot.Count,
			}, nil
		}
	}
}

func WithRenderer(renderer render.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithRenderOptions(options render.RenderOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RenderOptions = options
	}
}
