package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindConfigRoot(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	const name = ".sortinclude.yaml"
	req.NoError(os.WriteFile(filepath.Join(tempDir, name), []byte("ignoreCase: true\n"), 0644))

	subDir := filepath.Join(tempDir, "src", "engine")
	req.NoError(os.MkdirAll(subDir, 0755))

	sourceFile := filepath.Join(subDir, "render.cpp")
	req.NoError(os.WriteFile(sourceFile, []byte("void render() {}\n"), 0644))

	absTempDir, err := filepath.Abs(tempDir)
	req.NoError(err)

	t.Run("found in the directory itself", func(t *testing.T) {
		req := require.New(t)
		req.Equal(absTempDir, FindConfigRoot(tempDir, name))
	})

	t.Run("found from a nested directory", func(t *testing.T) {
		req := require.New(t)
		req.Equal(absTempDir, FindConfigRoot(subDir, name))
	})

	t.Run("search starts at the parent of a file path", func(t *testing.T) {
		req := require.New(t)
		req.Equal(absTempDir, FindConfigRoot(sourceFile, name))
	})

	t.Run("a directory named like the config does not count", func(t *testing.T) {
		req := require.New(t)
		decoyRoot := t.TempDir()
		req.NoError(os.MkdirAll(filepath.Join(decoyRoot, name), 0755))
		req.Empty(FindConfigRoot(decoyRoot, name))
	})

	t.Run("not found", func(t *testing.T) {
		req := require.New(t)
		req.Empty(FindConfigRoot(t.TempDir(), ".sortinclude-nowhere.yaml"))
	})
}
