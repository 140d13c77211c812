// Released under an MIT license. See LICENSE.

// Package history loads and saves the line editor's history.
package history

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Load calls read with the contents of the history file at path. A
// missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Save replaces the history file at path with what write produces.
func Save(path string, write func(w io.Writer) (int, error)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
