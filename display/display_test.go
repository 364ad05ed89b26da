package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/headsmith/emit"
	"github.com/teranos/headsmith/generate"
	"github.com/teranos/headsmith/heads"
	"github.com/teranos/headsmith/rules"
)

func init() {
	pterm.DisableStyling()
}

func sampleResult() *generate.Result {
	font := rules.Font{Name: "Oak Wood", BaseID: "mini_oak_planks"}
	return &generate.Result{
		Materials:        []generate.Entry{{ID: "mini_stone"}},
		MissingMaterials: []string{"BEDROCK", "BARRIER"},
		Fonts: []generate.FontEntries{{
			Font:    font,
			Entries: []generate.Entry{{ID: "oak_wood_a"}, {ID: "oak_wood_b"}},
		}},
		MissingGlyphs: []generate.FontMissing{{Font: "Oak Wood", Suffixes: []string{"C", "D"}}},
	}
}

func sampleReport() *emit.Report {
	return &emit.Report{
		Materials: emit.WrittenFile{Path: "data/mini_blocks_GENERATED.yml", Entries: 1},
		Fonts:     []emit.WrittenFile{{Path: "data/alphabet_GENERATED/oak_wood.yml", Entries: 2}},
	}
}

func TestPrintGenerate(t *testing.T) {
	var buf bytes.Buffer
	PrintGenerate(&buf, NewGenerateSummary("run", sampleResult(), sampleReport(), true))

	assert.Equal(t, ""+
		"Mini blocks: Generated 1 entries, 2 missing\n"+
		"Missing: BEDROCK, BARRIER\n"+
		"  oak_wood.yml: 2 entries\n"+
		"Missing characters by font:\n"+
		"  Oak Wood: C, D\n"+
		"Alphabet: Generated 2 entries across 1 files, 2 missing\n",
		buf.String())
}

func TestPrintGenerate_NoAlphabet(t *testing.T) {
	result := sampleResult()
	result.MissingMaterials = nil

	var buf bytes.Buffer
	PrintGenerate(&buf, NewGenerateSummary("run", result, sampleReport(), false))
	assert.Equal(t, "Mini blocks: Generated 1 entries, 0 missing\n", buf.String())
}

func TestGenerateSummary_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, NewGenerateSummary("abc", sampleResult(), nil, true)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abc", decoded["run_id"])
	assert.NotContains(t, decoded, "files")

	alphabet := decoded["alphabet"].(map[string]interface{})
	assert.EqualValues(t, 2, alphabet["generated"])
	assert.EqualValues(t, 2, alphabet["missing"])
}

func countsFixture() heads.Counts {
	return heads.Counts{
		Files: []heads.FileCount{{File: "heads/a.yml", Heads: 3}, {File: "heads/b.yml", Heads: 1}},
		Total: 4,
	}
}

func TestPrintCounts(t *testing.T) {
	counts := countsFixture()

	var buf bytes.Buffer
	PrintCounts(&buf, counts, []string{"docs/util/head-count.json"})
	assert.Equal(t, "heads/a.yml: 3 heads\nheads/b.yml: 1 heads\n\nTotal: 4 heads\nWritten to docs/util/head-count.json\n", buf.String())
}

func TestShouldOutputJSON(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "child"}
	root.AddCommand(child)

	assert.False(t, ShouldOutputJSON(nil))
	assert.False(t, ShouldOutputJSON(child))

	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}
