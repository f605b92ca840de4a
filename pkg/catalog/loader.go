package catalog

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// ContentTypeJSON is sent on every outgoing list request.
const ContentTypeJSON = "application/json; charset=utf-8"

// Loader fetches list payloads from different sources (filesystem, fs.FS,
// HTTP). Implementations live under internal/catalog but satisfy this
// contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; defaults to the
	// operating system if nil.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means URL sources are disabled unless AllowHTTPFallback
	// is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles the default HTTP loader when no client is
	// supplied. Keeping this explicit preserves offline-first behaviour.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// Headers are added to every outgoing request in addition to the fixed
	// Content-Type. Empty by default.
	Headers map[string]string
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote payloads.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithRequestHeader adds a single header to every outgoing request.
func WithRequestHeader(name, value string) LoaderOption {
	return func(opts *LoaderOptions) {
		if name == "" {
			return
		}
		if opts.Headers == nil {
			opts.Headers = make(map[string]string)
		}
		opts.Headers[name] = value
	}
}

// WithRequestHeaders merges a header map into the outgoing request headers.
func WithRequestHeaders(headers map[string]string) LoaderOption {
	return func(opts *LoaderOptions) {
		if len(headers) == 0 {
			return
		}
		if opts.Headers == nil {
			opts.Headers = make(map[string]string, len(headers))
		}
		for name, value := range headers {
			opts.Headers[name] = value
		}
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
