package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vincentdm05/sortinclude/pkg/cxx"
)

// reservedNameChars are the characters a target filename must not contain.
const reservedNameChars = `\/:*?"<>|`

// IsSourceFile checks if a filename has one of the given extensions,
// compared case-insensitively. An empty extension list falls back to the
// default C/C++ source and header set.
func IsSourceFile(filename string, extensions []string) bool {
	ext := filepath.Ext(filename)
	if len(extensions) == 0 {
		return cxx.IsSourceExtension(ext)
	}
	for _, allowed := range extensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// HasValidName checks if the filename portion of path is free of reserved
// characters.
func HasValidName(path string) bool {
	return !strings.ContainsAny(filepath.Base(path), reservedNameChars)
}

// FindSourceFiles recursively finds all C/C++ source files in a directory.
// Hidden directories and directories whose basename appears in excludes are
// skipped (but not the root directory); so are non-regular files, files
// with unrecognized extensions, and files with reserved name characters.
func FindSourceFiles(root string, extensions, excludes []string) ([]string, error) {
	var sourceFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if strings.HasPrefix(name, ".") || isExcludedDir(name, excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		name := filepath.Base(path)
		if IsSourceFile(name, extensions) && HasValidName(name) {
			sourceFiles = append(sourceFiles, path)
		}

		return nil
	})

	return sourceFiles, err
}

func isExcludedDir(name string, excludes []string) bool {
	for _, exclude := range excludes {
		if name == exclude {
			return true
		}
	}
	return false
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsRegularFile checks if the given path is a regular file
func IsRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
