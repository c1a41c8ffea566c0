package types

import (
	"fmt"
	"os"
)

// Source is an ordered, indexable, finite sequence of text lines with an
// identifying path. Its content does not change while it is being matched.
type Source interface {
	Kind() string
	// Path returns the identifier printed in prefixes and by -l/-L.
	Path() string
	Lines() []string
}

// FileSource is a file whose content was read into memory.
type FileSource struct {
	FilePath string
	lines    []string
}

// NewFileSource splits content into lines and binds it to path.
func NewFileSource(path string, content []byte) *FileSource {
	return &FileSource{
		FilePath: path,
		lines:    SplitLines(content),
	}
}

// ReadFileSource reads path from disk.
func ReadFileSource(path string) (*FileSource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return NewFileSource(path, content), nil
}

// Kind returns "file".
func (f *FileSource) Kind() string {
	return "file"
}

// Path returns the file path as it was supplied.
func (f *FileSource) Path() string {
	return f.FilePath
}

// Lines returns the file's lines without their terminators.
func (f *FileSource) Lines() []string {
	return f.lines
}

// MemorySource is a named, in-memory list of lines (stdin, tests, library callers).
type MemorySource struct {
	Name  string
	Items []string
}

// Kind returns "memory".
func (m MemorySource) Kind() string {
	return "memory"
}

// Path returns the source name.
func (m MemorySource) Path() string {
	return m.Name
}

// Lines returns the lines.
func (m MemorySource) Lines() []string {
	return m.Items
}
