package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-programlist/pkg/catalog"
)

// Loader implements catalog.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level programlist package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	headers   map[string]string
}

// Ensure the implementation satisfies the public interface.
var _ catalog.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options catalog.LoaderOptions) catalog.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	var headers map[string]string
	if len(options.Headers) > 0 {
		headers = make(map[string]string, len(options.Headers))
		for name, value := range options.Headers {
			headers[name] = value
		}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		headers:   headers,
	}
}

// Load fetches a payload from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src catalog.Source) (catalog.Document, error) {
	if src == nil {
		return catalog.Document{}, errors.New("catalog loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case catalog.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case catalog.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case catalog.SourceKindURL:
		if !l.allowHTTP {
			return catalog.Document{}, errors.New("catalog loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.headers)
	default:
		err = errors.New("catalog loader: unsupported source kind")
	}
	if err != nil {
		return catalog.Document{}, err
	}

	return catalog.NewDocument(src, data)
}
