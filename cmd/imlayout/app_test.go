package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listScene = `
id: list
width: 100
height: 200
layout: column
scrollbars: vertical
scroll: [0, 1000]
children:
  - id: a
    height: 300
  - id: b
    height: 200
`

const rowScene = `
id = "row"
width = 300
height = 100
layout = "row"
scale_children = true

[[children]]
id = "one"

[[children]]
id = "two"

[[children]]
id = "three"
`

func writeScenes(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.yaml"), []byte(listScene), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "row.toml"), []byte(rowScene), 0o600))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newApp(&stdout, &stderr)
	err := cmd.Run(context.Background(), append([]string{"imlayout", "--log-level", "error"}, args...))
	return stdout.String(), err
}

func TestDump(t *testing.T) {
	dir := writeScenes(t)

	out, err := run(t, "dump", filepath.Join(dir, "list.yaml"), filepath.Join(dir, "row.toml"))
	require.NoError(t, err)

	assert.Contains(t, out, "list pos=(0,0) size=100x200 content=(0,0 100x500) scroll=(0,300)")
	assert.Contains(t, out, "  b pos=(0,300) size=100x200")
	assert.Contains(t, out, "  (track) pos=(90,0) size=10x200")
	assert.Contains(t, out, "    (thumb) pos=(0,120) size=10x80")
	assert.Contains(t, out, "  three pos=(200,0) size=100x100")
	assert.Less(t, strings.Index(out, "list.yaml"), strings.Index(out, "row.toml"))
}

func TestDump_Directory(t *testing.T) {
	dir := writeScenes(t)

	out, err := run(t, "dump", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+filepath.Join(dir, "list.yaml"))
	assert.Contains(t, out, "# "+filepath.Join(dir, "row.toml"))
}

func TestHash(t *testing.T) {
	dir := writeScenes(t)

	first, err := run(t, "hash", filepath.Join(dir, "row.toml"))
	require.NoError(t, err)
	second, err := run(t, "hash", filepath.Join(dir, "row.toml"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 5, strings.Count(first, "\n"))
	assert.NotContains(t, first, "(track)")
}

func TestRender(t *testing.T) {
	dir := writeScenes(t)
	outDir := filepath.Join(t.TempDir(), "png")

	out, err := run(t, "render", "--out", outDir, "--scale", "2", "--labels", filepath.Join(dir, "list.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(outDir, "list.png"))

	info, err := os.Stat(filepath.Join(outDir, "list.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCheck(t *testing.T) {
	dir := writeScenes(t)

	out, err := run(t, "check", filepath.Join(dir, "row.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "(4 nodes)")
}

func TestCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("layout: flex\n"), 0o600))

	_, err := run(t, "check", bad)
	assert.ErrorContains(t, err, "unknown layout algorithm")

	_, err = run(t, "check", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "check", t.TempDir())
	assert.ErrorContains(t, err, "no scene files found")
}

func TestPassesValidated(t *testing.T) {
	dir := writeScenes(t)

	_, err := run(t, "--passes", "0", "dump", dir)
	assert.ErrorContains(t, err, "--passes")
}

func TestConfigFile(t *testing.T) {
	dir := writeScenes(t)
	cfg := filepath.Join(dir, "imlayout.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[logging]\nlevel = \"nope\"\n"), 0o600))

	_, err := run(t, "--config", cfg, "check", filepath.Join(dir, "row.toml"))
	assert.ErrorContains(t, err, "logging.level")
}

func TestCollectSceneFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	for _, name := range []string{"a.yaml", "b.yml", "c.toml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(nested, "d.yaml"), nil, 0o600))

	files, err := collectSceneFiles([]string{dir})
	require.NoError(t, err)
	assert.Len(t, files, 3)

	files, err = collectSceneFiles([]string{dir + "/..."})
	require.NoError(t, err)
	assert.Len(t, files, 4)
	assert.Contains(t, files, filepath.Join(nested, "d.yaml"))
}
