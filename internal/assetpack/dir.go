package assetpack

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ostforge/internal/services"
)

// Dir is a Container over a directory of extracted asset files.
type Dir struct {
	root string
}

// NewDir opens a directory-backed container rooted at root.
func NewDir(root string) (*Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, services.Wrap(services.ErrContainerRead, "assetpack", "open", root, err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrContainerRead, "assetpack", "open", root+" is not a directory", nil)
	}
	return &Dir{root: root}, nil
}

// Entries walks the directory tree once and lists matching files.
func (d *Dir) Entries(filter TypeFilter) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(d.root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if strings.HasPrefix(de.Name(), ".") && path != d.root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(de.Name(), ".") {
			return nil
		}
		if !matchesFilter(de.Name(), filter) {
			return nil
		}
		entries = append(entries, Entry{Name: de.Name(), Path: path})
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrContainerRead, "assetpack", "list", d.root, err)
	}
	return entries, nil
}

// Open returns the byte stream for an entry path.
func (d *Dir) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrContainerRead, "assetpack", "read", path, err)
	}
	return file, nil
}
