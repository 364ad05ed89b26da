package heads

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/headsmith/errors"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "heads/zeta.yml", "heads: {}\n")
	writeFile(t, root, "heads/alpha.yml", "heads: {}\n")
	writeFile(t, root, "heads/alphabet/oak_wood.yml", "heads: {}\n")
	writeFile(t, root, "heads/readme.md", "not yaml")
	writeFile(t, root, "config.yml", "head-files: []\n")

	files, err := Scan(root, "heads")
	require.NoError(t, err)
	assert.Equal(t, []string{"heads/alpha.yml", "heads/alphabet/oak_wood.yml", "heads/zeta.yml"}, files)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(t.TempDir(), "heads")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCount(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "heads/a.yml", "# comment\nheads:\n  one:\n    texture: \"x\"\n  two:\n    texture: \"y\"\n")
	writeFile(t, root, "heads/b.yml", "heads:\n")
	writeFile(t, root, "heads/c.yml", "other: 1\n")

	counts, err := Count(root, []string{"heads/a.yml", "heads/missing.yml", "heads/b.yml", "heads/c.yml"})
	require.NoError(t, err)

	assert.Equal(t, []FileCount{
		{File: "heads/a.yml", Heads: 2},
		{File: "heads/b.yml", Heads: 0},
		{File: "heads/c.yml", Heads: 0},
	}, counts.Files)
	assert.Equal(t, 2, counts.Total)
}

func TestCount_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "bad.yml", "heads: [unterminated\n")

	_, err := Count(root, []string{"bad.yml"})
	assert.Error(t, err)
}

func TestCounts_MarshalKeepsOrder(t *testing.T) {
	counts := Counts{
		Files: []FileCount{{File: "heads/z.yml", Heads: 3}, {File: "heads/a.yml", Heads: 1}},
		Total: 4,
	}

	data, err := Encode(counts)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"heads/z.yml\": 3,\n  \"heads/a.yml\": 1,\n  \"total\": 4\n}\n", string(data))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded[TotalKey])
}

func TestCounts_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(Counts{})
	require.NoError(t, err)
	assert.Equal(t, `{"total":0}`, string(data))
}

func TestPluginHeadFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, PluginConfigFile, "head-files:\n  - heads/a.yml\n  - heads/b.yml\nother: true\n")

	files, err := PluginHeadFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"heads/a.yml", "heads/b.yml"}, files)

	_, err = PluginHeadFiles(t.TempDir())
	assert.True(t, errors.IsNotFoundError(err))
}
