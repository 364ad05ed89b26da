package texture

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownValue(t *testing.T) {
	want := "eyJ0ZXh0dXJlcyI6eyJTS0lOIjp7InVybCI6Imh0dHA6Ly90ZXh0dXJlcy5taW5lY3JhZnQubmV0L3RleHR1cmUvYWJjMTIzIn19fQ=="
	assert.Equal(t, want, Encode("abc123"))
}

func TestEncode_DecodesToSkinURL(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(Encode("deadbeef"))
	require.NoError(t, err)

	var p payload
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, URLPrefix+"deadbeef", p.Textures.Skin.URL)
}

func TestAppendColumn(t *testing.T) {
	in := "name,category,hash\nOak Planks,blocks,abc123\nshort,row\n"
	var out bytes.Buffer

	stats, err := AppendColumn(strings.NewReader(in), &out)
	require.NoError(t, err)
	assert.Equal(t, Stats{Rows: 2, Encoded: 1}, stats)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,category,hash,base64_texture", lines[0])
	assert.Equal(t, "Oak Planks,blocks,abc123,"+Encode("abc123"), lines[1])
	assert.Equal(t, "short,row,", lines[2])
}

func TestAppendColumn_QuotedFields(t *testing.T) {
	in := "name,category,hash,tags\n\"Oak, Planks\",blocks,abc,\"Vanilla Block, Inner Layer Block\"\n"
	var out bytes.Buffer

	_, err := AppendColumn(strings.NewReader(in), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"Oak, Planks",blocks,abc,"Vanilla Block, Inner Layer Block",`+Encode("abc"))
}

func TestAppendColumn_Empty(t *testing.T) {
	var out bytes.Buffer
	stats, err := AppendColumn(strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Zero(t, stats.Rows)
	assert.Empty(t, out.String())
}
