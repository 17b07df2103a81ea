package atlas

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// ErrNotFound is returned by a Source for names it does not hold.
var ErrNotFound = errors.New("atlas: entry not found")

// Source provides raw encoded image bytes by entry name.
// Entries is called once to build the Index; ReadEntry per decode.
type Source interface {
	Entries() ([]string, error)
	ReadEntry(name string) ([]byte, error)
}

// imageExts are the entry extensions the decoder understands.
var imageExts = map[string]bool{".png": true, ".tga": true}

// FSSource reads atlas entries from an fs.FS (directory, zip or embed).
type FSSource struct {
	fsys  fs.FS
	close func() error
}

// NewFSSource wraps fsys. Entry names are slash-separated fs paths.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Open opens a directory or a .zip archive as an atlas source.
func Open(p string) (*FSSource, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("atlas: open %s: %w", p, err)
	}
	if info.IsDir() {
		return NewFSSource(os.DirFS(p)), nil
	}
	if strings.ToLower(path.Ext(p)) != ".zip" {
		return nil, fmt.Errorf("atlas: open %s: not a directory or zip archive", p)
	}
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("atlas: open %s: %w", p, err)
	}
	return &FSSource{fsys: zr, close: zr.Close}, nil
}

// Close releases the underlying archive, if any.
func (s *FSSource) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Entries lists every image file in the source.
func (s *FSSource) Entries() ([]string, error) {
	var names []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !imageExts[strings.ToLower(path.Ext(p))] {
			return nil
		}
		names = append(names, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: list entries: %w", err)
	}
	return names, nil
}

// ReadEntry returns the raw bytes of one entry.
func (s *FSSource) ReadEntry(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("atlas: read %s: %w", name, err)
	}
	return data, nil
}

// MapSource is an in-memory atlas keyed by entry name.
type MapSource map[string][]byte

func (m MapSource) Entries() ([]string, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m MapSource) ReadEntry(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, nil
}
