package runner

import "path/filepath"

func joinDir(workdir, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(workdir, dir)
}
