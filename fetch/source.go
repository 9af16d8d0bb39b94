package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// Source names one input artifact and opens it for reading. Open may be
// called at most once per Load; implementations backed by one-shot readers
// are acceptable.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// File returns a Source reading the given path; its name is the path itself.
func File(path string) Source {
	return fileSource(path)
}

type fileSource string

func (f fileSource) Name() string { return string(f) }

func (f fileSource) Open(_ context.Context) (io.ReadCloser, error) {
	rc, err := os.Open(string(f))
	if err != nil {
		return nil, fmt.Errorf("fetch: open %s: %w", string(f), err)
	}

	return rc, nil
}

// Reader wraps an existing reader under the given name. Single-use: the
// reader is consumed by the first Load that touches it.
func Reader(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

type readerSource struct {
	name string
	r    io.Reader
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

// Bytes wraps an in-memory text under the given name; reusable across Loads.
func Bytes(name string, b []byte) Source {
	return &bytesSource{name: name, b: b}
}

type bytesSource struct {
	name string
	b    []byte
}

func (s *bytesSource) Name() string { return s.name }

func (s *bytesSource) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.b)), nil
}
