package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
)

// DefaultEndpoint is the list resource path used when a caller does not
// provide an explicit source.
const DefaultEndpoint = "/api/v1/programs/"

// Source identifies where a program list payload originates. Loaders operate
// on files, fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It
// panics if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	src, err := ParseSourceURL(raw)
	if err != nil {
		panic(err)
	}
	return src
}

// ParseSourceURL is the error-returning variant of SourceFromURL.
func ParseSourceURL(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("catalog: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("catalog: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}
