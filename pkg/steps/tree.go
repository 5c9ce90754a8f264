package steps

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Tree is the project directory a pipeline runs against.
type Tree struct {
	Root string
}

func (t Tree) Path(rel string) string {
	return filepath.Join(t.Root, filepath.FromSlash(rel))
}

// Read returns the content of rel and whether it exists.
func (t Tree) Read(rel string) ([]byte, bool, error) {
	data, err := os.ReadFile(t.Path(rel))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Remove deletes rel, reporting whether there was anything to delete.
func (t Tree) Remove(rel string) (bool, error) {
	err := os.Remove(t.Path(rel))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
