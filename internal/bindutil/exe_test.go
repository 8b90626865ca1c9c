package bindutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExeExplicitPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/apps/houdini/bin/houdini", []byte("#!"), 0o755))
	require.NoError(t, fs.MkdirAll("/apps/maya", 0o755))

	t.Run("existing file returned unchanged", func(t *testing.T) {
		path, err := FindExe(fs, "houdini", "/apps/houdini/bin/houdini")
		require.NoError(t, err)
		assert.Equal(t, "/apps/houdini/bin/houdini", path)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := FindExe(fs, "houdini", "/apps/houdini/bin/nothing")
		var notFound *ExeNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "/apps/houdini/bin/nothing", notFound.Name)
	})

	t.Run("directory is not a file", func(t *testing.T) {
		_, err := FindExe(fs, "maya", "/apps/maya")
		var notFile *NotAFileError
		require.ErrorAs(t, err, &notFile)
		assert.Equal(t, "/apps/maya", notFile.Path)
	})
}

func TestFindExePathSearch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix PATH fixtures")
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "mytool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	t.Run("found on PATH", func(t *testing.T) {
		path, err := FindExe(afero.NewOsFs(), "mytool", "")
		require.NoError(t, err)
		assert.Equal(t, exe, path)
	})

	t.Run("not on PATH", func(t *testing.T) {
		_, err := FindExe(afero.NewOsFs(), "othertool", "")
		var notFound *ExeNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "othertool", notFound.Name)
	})
}
