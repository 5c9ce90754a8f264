package fileutils

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultPerm fs.FileMode = 0o644

// AtomicWrite writes a file atomically.
func AtomicWrite(path string, gen func(w io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func(tmp *os.File) {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}(tmp)

	if err := gen(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Chmod(permOf(path)); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	if df, err := os.Open(dir); err == nil {
		_ = df.Sync()
		_ = df.Close()
	}

	return nil
}

// AtomicEdit replaces the contents of path with next, creating parent
// directories as needed. Nothing is written when the file already holds
// exactly next. changed reports whether the file was written.
func AtomicEdit(path string, next []byte) (changed bool, err error) {
	current, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(current, next) {
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return false, err
		}
	default:
		return false, err
	}

	if err := AtomicWrite(path, func(w io.Writer) error {
		_, err := w.Write(next)
		return err
	}); err != nil {
		return false, err
	}

	return true, nil
}

// Exists reports whether path names a regular file.
func Exists(path string) (bool, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return !fi.IsDir(), nil
}

// permOf keeps the mode of an existing file across atomic replacement.
func permOf(path string) fs.FileMode {
	if fi, err := os.Stat(path); err == nil {
		return fi.Mode().Perm()
	}
	return defaultPerm
}
