package fileutils

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/olimci/frontkit/pkg/utils/set"
)

// WalkFiles walks a directory tree and returns a set of files
func WalkFiles(root string) (files *set.Set[string], err error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	files = set.New[string]()

	err = filepath.WalkDir(abs, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}

		if !d.IsDir() {
			files.Add(filepath.ToSlash(rel))
		}

		return nil
	})

	return files, err
}

// Snapshot returns a content digest for every file under root, keyed by its
// slash-separated relative path.
func Snapshot(root string) (map[string]string, error) {
	files, err := WalkFiles(root)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, files.Len())
	for _, rel := range files.Values() {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		sum := sha256.Sum256(data)
		out[rel] = hex.EncodeToString(sum[:])
	}

	return out, nil
}
