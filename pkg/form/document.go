package form

import (
	"bytes"
	"errors"
	"fmt"
)

// MaxDocumentSize caps template documents at 1 MiB. Issue-form templates are
// small hand-authored files; anything larger is a wrong file or a bloated
// error page fetched by mistake.
const MaxDocumentSize = 1 << 20

// Document wraps the raw template payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument validates and wraps a raw template payload. Blank payloads and
// payloads over MaxDocumentSize are rejected before parsing is attempted.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("form: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, fmt.Errorf("form: template document %s is blank", displaySource(src.Location()))
	}
	if len(raw) > MaxDocumentSize {
		return Document{}, fmt.Errorf("form: template document %s is %d bytes, above the %d byte limit",
			displaySource(src.Location()), len(raw), MaxDocumentSize)
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

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
