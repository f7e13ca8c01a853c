// Package fs provides file system adapters for walking and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns all files under root in lexical order, skipping .git and
// ignored names. It implements ports.Walker.
func (w *Walker) Walk(root string, ignores []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if skipAction := w.shouldSkipDir(d, ignores); skipAction != nil {
			return skipAction
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk input tree"), "root", root)
	}
	return files, nil
}

// WalkFiles yields all files in the root directory, skipping .git and ignored
// directories. filepath.WalkDir yields paths starting with root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skipAction := w.shouldSkipDir(d, ignores); skipAction != nil {
				return skipAction
			}

			// Skip directories, yield files
			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkipDir checks if a directory should be skipped based on ignore
// patterns. Returns filepath.SkipDir for skipped directories, nil otherwise.
func (w *Walker) shouldSkipDir(d fs.DirEntry, ignores []string) error {
	name := d.Name()

	// Always skip .git
	if d.IsDir() && name == ".git" {
		return filepath.SkipDir
	}

	// Always skip .jj
	if d.IsDir() && name == ".jj" {
		return filepath.SkipDir
	}

	// Check ignores
	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
	}

	return nil
}
