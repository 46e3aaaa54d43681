package filestore

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const ext = ".json"

// Dir stores each collection as <dir>/<escaped name>.json.
type Dir struct {
	path string
}

// New returns a backend rooted at dir, creating it if needed.
func New(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create collections dir: %w", err)
	}
	return &Dir{path: dir}, nil
}

func (d *Dir) file(name string) string {
	return filepath.Join(d.path, url.PathEscape(name)+ext)
}

// Read returns the file contents; a missing file is not an error.
func (d *Dir) Read(name string) ([]byte, error) {
	b, err := os.ReadFile(d.file(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Write writes via a temp file, then atomically replaces the target.
func (d *Dir) Write(name string, payload []byte) error {
	path := d.file(name)

	f, err := os.CreateTemp(d.path, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (d *Dir) Remove(name string) error {
	err := os.Remove(d.file(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Names lists collections, skipping temp files and anything not written by Write.
func (d *Dir) Names() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		name, err := url.PathUnescape(strings.TrimSuffix(e.Name(), ext))
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
