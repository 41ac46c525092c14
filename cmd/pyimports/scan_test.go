package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunScan_DefaultOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import json\nfrom collections import OrderedDict\nx = 1\n")

	var buf bytes.Buffer

	require.NoError(t, runScan([]string{path}, scanOptions{format: formatJSON}, &buf))

	var got map[string][]string

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string][]string{path: {"json", "collections"}}, got)

	// 4-space indentation on the default format.
	assert.Contains(t, buf.String(), "\n    \"")
}

func TestRunScan_TotalAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeScript(t, dir, "a.py", "import foo\n")
	second := writeScript(t, dir, "b.py", "import foo\n")

	var buf bytes.Buffer

	opts := scanOptions{format: formatJSON, total: true}
	require.NoError(t, runScan([]string{first, second}, opts, &buf))

	var got []string

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"foo"}, got)
}

func TestRunScan_DirectoryArgumentsAbsentFromOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import os\n")

	var buf bytes.Buffer

	opts := scanOptions{format: formatJSON}
	require.NoError(t, runScan([]string{dir, filepath.Join(dir, "gone.py"), path}, opts, &buf))

	var got map[string][]string

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Contains(t, got, path)
}

func TestRunScan_PackagesAndStdlibFilters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import os.path\nimport numpy.linalg\n")

	var buf bytes.Buffer

	opts := scanOptions{format: formatJSON, onlyPackages: true, excludeStdlib: true}
	require.NoError(t, runScan([]string{path}, opts, &buf))

	var got map[string][]string

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"numpy"}, got[path])
}

func TestRunScan_NoScripts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := runScan(nil, scanOptions{format: formatJSON}, &buf)
	assert.ErrorIs(t, err, ErrNoScripts)
}

func TestRunScan_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import os\n")

	var buf bytes.Buffer

	err := runScan([]string{path}, scanOptions{format: "xml"}, &buf)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRunScan_YAMLFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import os\n")

	var buf bytes.Buffer

	require.NoError(t, runScan([]string{path}, scanOptions{format: formatYAML}, &buf))
	assert.Contains(t, buf.String(), "- os")
}

func TestRunScan_CompactFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import os\n")

	var buf bytes.Buffer

	require.NoError(t, runScan([]string{path}, scanOptions{format: formatCompact}, &buf))
	assert.NotContains(t, buf.String(), "    ")
}

func TestRunScan_OutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeScript(t, dir, "app.py", "import os\n")
	outPath := filepath.Join(dir, "report.json")

	var buf bytes.Buffer

	opts := scanOptions{format: formatJSON, output: outPath}
	require.NoError(t, runScan([]string{path}, opts, &buf))

	assert.Empty(t, buf.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var got map[string][]string

	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []string{"os"}, got[path])
}

func TestRunScan_AllCollectsRecursively(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nested := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	writeScript(t, nested, "deep.py", "import foo\n")
	writeScript(t, dir, "top.py", "import bar\n")

	var buf bytes.Buffer

	opts := scanOptions{format: formatJSON, all: true, total: true}
	require.NoError(t, runScan([]string{dir}, opts, &buf))

	var got []string

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"bar", "foo"}, got)
}

func TestRootCmd_FlagSurface(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()

	for flag, shorthand := range map[string]string{
		"exclude-stdlib": "e",
		"total":          "t",
		"only-packages":  "p",
	} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "missing flag --%s", flag)
		assert.Equal(t, shorthand, f.Shorthand)
		assert.Equal(t, "false", f.DefValue)
	}
}
