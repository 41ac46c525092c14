package pyimports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_PythonExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScript(t, dir, "a.py", "import os\n")
	writeScript(t, dir, "b.pyw", "import sys\n")
	writeScript(t, dir, "notes.txt", "import nothing\n")

	files, err := Collect([]string{dir}, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.py"),
		filepath.Join(dir, "b.pyw"),
	}, files)
}

func TestCollect_SkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	hidden := filepath.Join(dir, ".venv")
	require.NoError(t, os.MkdirAll(hidden, 0o750))
	writeScript(t, hidden, "hidden.py", "import os\n")
	writeScript(t, dir, "visible.py", "import os\n")

	files, err := Collect([]string{dir}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "visible.py")}, files)
}

func TestCollect_ShebangScript(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScript(t, dir, "tool", "#!/usr/bin/env python\nimport os\n")
	writeScript(t, dir, "other", "just some text\n")

	files, err := Collect([]string{dir}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "tool")}, files)
}

func TestCollect_IgnorePatterns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	vendored := filepath.Join(dir, "vendor")
	require.NoError(t, os.MkdirAll(vendored, 0o750))
	writeScript(t, vendored, "dep.py", "import os\n")
	writeScript(t, dir, "app.py", "import os\n")

	files, err := Collect([]string{dir}, []string{"**/vendor/**"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "app.py")}, files)
}

func TestCollect_BadIgnorePattern(t *testing.T) {
	t.Parallel()

	_, err := Collect([]string{t.TempDir()}, []string{"[unclosed"})
	assert.Error(t, err)
}

func TestCollect_FileRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import os\n")

	files, err := Collect([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{path}, files)
}

func TestCollect_MissingRootSilentlyDropped(t *testing.T) {
	t.Parallel()

	files, err := Collect([]string{filepath.Join(t.TempDir(), "nope")}, nil)
	require.NoError(t, err)

	assert.Empty(t, files)
}

func TestIsHiddenDir(t *testing.T) {
	t.Parallel()

	assert.True(t, isHiddenDir(".git"))
	assert.False(t, isHiddenDir("."))
	assert.False(t, isHiddenDir("src"))
}
