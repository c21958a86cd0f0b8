package atomicfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.txt")

	require.NoError(t, WriteFile(path, []byte("conteudo")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "conteudo", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteFile(path, []byte("primeiro")))
	require.NoError(t, WriteFile(path, []byte("segundo")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "segundo", string(data))
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "out.txt"), []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.txt", entries[0].Name())
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	require.NoError(t, WriteJSON(path, map[string]string{"id": "FUP-2025-000001"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "FUP-2025-000001", doc["id"])
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestAppendJSONLineStartsFromMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.jsonl")

	require.NoError(t, AppendJSONLine(path, map[string]string{"id": "a"}))
	require.NoError(t, AppendJSONLine(path, map[string]string{"id": "b"}))
	require.NoError(t, AppendJSONLine(path, map[string]string{"id": "c"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, want := range []string{"a", "b", "c"} {
		var record map[string]string
		require.NoError(t, json.Unmarshal([]byte(lines[i]), &record))
		assert.Equal(t, want, record["id"])
	}
}
