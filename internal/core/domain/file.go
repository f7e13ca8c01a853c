package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// FileBuffer is the mutable in-memory representation of one logical file
// during a run. The original content is loaded once; tasks accumulate their
// mutations in the modified content. A buffer is never reloaded mid-run and
// is persisted at most once.
type FileBuffer struct {
	origin   string
	original string
	content  string
}

// LoadFile reads the original content from path. It returns ErrFileNotFound
// if the path does not exist.
func LoadFile(path string) (*FileBuffer, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the enumerated input tree
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(ErrFileNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	content := string(data)
	return &FileBuffer{origin: path, original: content, content: content}, nil
}

// FileFromContent constructs a buffer with no backing origin path. Used by
// the pure in-memory apply mode.
func FileFromContent(content string) *FileBuffer {
	return &FileBuffer{original: content, content: content}
}

// Origin returns the path the buffer was loaded from, or "" for in-memory
// buffers.
func (f *FileBuffer) Origin() string {
	return f.origin
}

// Original returns the content as it was when the buffer was created.
func (f *FileBuffer) Original() string {
	return f.original
}

// Content returns the currently accumulated modified content.
func (f *FileBuffer) Content() string {
	return f.content
}

// SetContent replaces the accumulated modified content.
func (f *FileBuffer) SetContent(content string) {
	f.content = content
}

// Save writes the current modified content to dest, creating intermediate
// directories as needed.
func (f *FileBuffer) Save(dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return zerr.With(zerr.With(ErrWriteFailure, "cause", err.Error()), "path", dest)
	}
	if err := os.WriteFile(dest, []byte(f.content), 0o644); err != nil { //nolint:gosec // mirrored source file
		return zerr.With(zerr.With(ErrWriteFailure, "cause", err.Error()), "path", dest)
	}
	return nil
}
