// Package definition loads, defaults, validates, and sanitizes form
// definitions handed over by the persistence collaborator. The payload is
// JSON-shaped; YAML is accepted for fixtures and hand-authored files.
package definition

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a definition payload originated so the loader can
// operate on raw bytes, files, fs.FS entries, or URLs without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindBytes SourceKind = "bytes"
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindURL   SourceKind = "url"
)

type bytesSource struct {
	data []byte
}

func (s bytesSource) Kind() SourceKind { return SourceKindBytes }

func (s bytesSource) Location() string { return "<bytes>" }

// SourceFromBytes wraps an in-memory payload.
func SourceFromBytes(data []byte) Source {
	return bytesSource{data: data}
}

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }

func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }

func (s fsSource) Location() string { return s.name }

// SourceFromFS returns a Source identifying an entry inside the loader's
// configured fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Kind() SourceKind { return SourceKindURL }

func (s urlSource) Location() string { return s.raw }

// SourceFromURL parses the supplied URL string and returns a Source. It
// panics if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("definition: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("definition: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}
