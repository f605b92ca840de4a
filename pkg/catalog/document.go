package catalog

import "errors"

// Document wraps a raw list payload and its origin. Keeping the raw bytes
// here decouples the loader stage from payload decoding, which belongs to
// the Parser.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("catalog: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("catalog: raw payload is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns the payload bytes as fetched.
func (d Document) Raw() []byte {
	return d.raw
}
