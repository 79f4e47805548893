package render

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Default file modes.
const (
	ModeFile       os.FileMode = 0644
	ModeExecutable os.FileMode = 0755
)

// File is a rendered file, relative to the output root.
type File struct {
	// Slash-separated, always starts with the identifier.
	Path    string
	Content string
	Mode    os.FileMode
}

// NewFile creates a regular file under the identifier directory.
func NewFile(identifier, name, content string) *File {
	return &File{
		Path:    path.Join(identifier, name),
		Content: content,
		Mode:    ModeFile,
	}
}

// NewExecutable creates an executable file under the identifier directory.
func NewExecutable(identifier, name, content string) *File {
	f := NewFile(identifier, name, content)
	f.Mode = ModeExecutable
	return f
}

// CheckRooted returns an error if the file would be
// written outside of the identifier directory.
func (f *File) CheckRooted(identifier string) error {
	if strings.Contains(f.Path, "\\") {
		return errors.Errorf("path %q of %v must be slash-separated", f.Path, identifier)
	}

	clean := path.Clean(f.Path)
	if clean != f.Path || !strings.HasPrefix(clean, identifier+"/") {
		return errors.Errorf("path %q is not rooted under %v/", f.Path, identifier)
	}

	for _, part := range strings.Split(clean, "/") {
		if part == ".." {
			return errors.Errorf("path %q escapes %v/", f.Path, identifier)
		}
	}

	return nil
}
