package utils

import (
	"os"
	"path/filepath"
)

// maxLookupDepth bounds the walk towards the filesystem root.
const maxLookupDepth = 20

// FindConfigRoot walks up from path looking for a directory that contains
// a regular file called name. The search starts at path itself when path
// is a directory, otherwise at its parent. It returns the directory
// holding the file, or an empty string when none is found.
func FindConfigRoot(path, name string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for i := 0; i < maxLookupDepth; i++ {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.Mode().IsRegular() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
