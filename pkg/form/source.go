package form

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
)

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies where a template document originated so loaders can
// operate on files, fs.FS entries, or URLs without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// All source kinds share the same shape: a kind tag plus a location string
// whose interpretation the loader strategies own.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind {
	return s.kind
}

func (s source) Location() string {
	return s.location
}

// SourceFromFile returns a Source pointing to a template file on disk.
func SourceFromFile(p string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(p)}
}

// SourceFromFS returns a Source identifying a template inside an fs.FS. The
// name is normalized to the slash-separated form io/fs expects.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: path.Clean(name)}
}

// SourceFromURL parses the supplied URL string and returns a Source. Remote
// templates are only fetched over http or https; invalid input panics to
// surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("form: empty URL source")
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		panic(fmt.Sprintf("form: invalid URL %q: %v", raw, err))
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		panic(fmt.Sprintf("form: unsupported URL scheme %q for template source", parsed.Scheme))
	}
	return source{kind: SourceKindURL, location: raw}
}
