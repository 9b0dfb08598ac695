// Package photolib provides the media-library photo sources: a local media
// directory, and the agency's S3 evidence bucket that field devices sync
// their photos into.
package photolib

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// Library lists available photos by name and materializes a chosen photo
// into a local file the capture workflow can attach.
type Library interface {
	List(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, name string) (string, error)
}

// DirLibrary serves photos from a local media directory.
type DirLibrary struct {
	dir string
}

// NewDirLibrary creates a library over a local directory.
func NewDirLibrary(dir string) *DirLibrary {
	return &DirLibrary{dir: dir}
}

// List returns the JPEG files in the media directory, sorted by name.
func (l *DirLibrary) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read media directory")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isJPEG(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Fetch returns the local path for name after confirming it exists.
func (l *DirLibrary) Fetch(ctx context.Context, name string) (string, error) {
	path := filepath.Join(l.dir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(err, "photo not found in media directory")
	}
	return path, nil
}

func isJPEG(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".jpg" || ext == ".jpeg"
}
