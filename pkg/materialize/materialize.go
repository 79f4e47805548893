// Package materialize writes rendered files to disk.
//
// Writing always truncates and rewrites existing files, so running
// a generator twice produces the same tree. There is no atomicity:
// an error leaves the files written so far in place.
package materialize

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tamasfe/scaffold/pkg/render"
)

// Materializer writes files below Root.
type Materializer struct {
	Root string

	// DryRun only reports the paths.
	DryRun bool
}

// New creates a Materializer for the root directory.
func New(root string, dryRun bool) *Materializer {
	return &Materializer{
		Root:   root,
		DryRun: dryRun,
	}
}

// Materialize creates the identifier directory and writes every file
// into it. It returns the written paths in order.
func (m *Materializer) Materialize(identifier string, files []*render.File) ([]string, error) {
	for _, f := range files {
		if err := f.CheckRooted(identifier); err != nil {
			return nil, err
		}
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, filepath.Join(m.Root, filepath.FromSlash(f.Path)))
	}

	if m.DryRun {
		return paths, nil
	}

	dir := filepath.Join(m.Root, identifier)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory %v", dir)
	}

	for i, f := range files {
		if err := writeFile(paths[i], f); err != nil {
			return paths[:i], err
		}
	}

	return paths, nil
}

func writeFile(path string, f *render.File) error {
	mode := f.Mode
	if mode == 0 {
		mode = render.ModeFile
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return errors.Wrapf(err, "failed to create directory for %v", path)
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %v", path)
	}

	_, err = out.WriteString(f.Content)
	if err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to write to file %v", path)
	}

	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to close file %v", path)
	}

	// The mode of an existing file is not changed by OpenFile.
	if err := os.Chmod(path, mode); err != nil {
		return errors.Wrapf(err, "failed to set mode of %v", path)
	}

	return nil
}
