package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/headsmith/catalog"
	"github.com/teranos/headsmith/logger"
	"github.com/teranos/headsmith/rules"
)

const testTable = `
materials = ["OAK_PLANKS", "HAY_BLOCK", "ORANGE_CONCRETE", "BEDROCK"]

[material_properties]
OAK_PLANKS = ["flammable"]

[font_to_mini_block]
"Oak Wood" = "mini_oak_planks"
"Birch" = "mini_birch_planks"

[material_tag_patterns]
wood = ["*_PLANKS"]

[material_tag_lists]
natural = ["OAK_PLANKS", "HAY_BLOCK"]

[alphabet.letters]
A = ["a", "A"]
B = ["b", "B"]

[alphabet.punctuation]
"Exclamation Mark" = ["exclamation", "!"]
`

func loadTable(t *testing.T, data string) *rules.Table {
	t.Helper()
	table, err := rules.Parse([]byte(data), nil)
	require.NoError(t, err)
	return table
}

func row(name, category, tags, texture string) catalog.Row {
	return catalog.NewRow([]string{name, category, "", tags, texture}, 0)
}

func TestRun_EndToEnd(t *testing.T) {
	table := loadTable(t, `
materials = ["OAK_PLANKS"]
[material_properties]
[font_to_mini_block]
`)
	rows := []catalog.Row{
		row("Oak Planks", "blocks", "Vanilla Block", "TEXA"),
		row("Oak Planks", "decoration", "", "TEXB"),
	}

	result, err := Run(context.Background(), table, rows, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Materials, 1)
	assert.Equal(t, "mini_oak_planks", result.Materials[0].ID)
	assert.Equal(t, "TEXA", result.Materials[0].Texture)
	assert.Empty(t, result.MissingMaterials)
	assert.Empty(t, result.Fonts)
	assert.Zero(t, result.AlphabetCount())
}

func TestMaterials_ComposesEntry(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		row("Oak Planks", "blocks", "Vanilla Block", "OAK"),
		row("Hay Bale", "blocks", "", "HAY"),
		row("Orange Concrete", "decoration", "", "ORANGE"),
	}

	g := New(table, rows, DefaultOptions(), nil)
	entries, missing := g.Materials()

	require.Len(t, entries, 3)
	oak := entries[0]
	assert.Equal(t, "mini_oak_planks", oak.ID)
	assert.Equal(t, "Mini Oak Planks", oak.DisplayName)
	assert.Equal(t, "OAK", oak.Texture)
	assert.Equal(t, []string{"wood", "natural"}, oak.Tags)
	assert.Equal(t, []string{"flammable"}, oak.Properties)
	assert.Equal(t, Recipe{ID: "mini_oak_planks", Input: MaterialInput("OAK_PLANKS")}, oak.Recipe)

	assert.Equal(t, "HAY", entries[1].Texture, "hay block resolves through its alias")
	assert.Equal(t, "ORANGE", entries[2].Texture, "decoration is a fallback category")
	assert.Empty(t, entries[2].Tags)
	assert.Empty(t, entries[2].Properties)

	assert.Equal(t, []string{"BEDROCK"}, missing)
}

func TestMaterials_RosterOrder(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		row("Orange Concrete", "blocks", "", "ORANGE"),
		row("Oak Planks", "blocks", "", "OAK"),
	}

	entries, missing := New(table, rows, DefaultOptions(), nil).Materials()
	require.Len(t, entries, 2)
	assert.Equal(t, "mini_oak_planks", entries[0].ID)
	assert.Equal(t, "mini_orange_concrete", entries[1].ID)
	assert.Equal(t, []string{"HAY_BLOCK", "BEDROCK"}, missing)
}

func TestMaterial_PropertiesAreCopied(t *testing.T) {
	table := loadTable(t, testTable)
	g := New(table, nil, DefaultOptions(), nil)

	entry := g.Material("OAK_PLANKS", "X")
	entry.Properties[0] = "changed"

	assert.Equal(t, []string{"flammable"}, table.Properties("OAK_PLANKS"))
}

func glyphRow(name, font, texture string) catalog.Row {
	return row(name, AlphabetCategory, "Font ("+font+")", texture)
}

func TestAlphabet_Glyphs(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		glyphRow("Oak Wood Letter A", "Oak Wood", "OA"),
		glyphRow("Oak Wood Exclamation Mark", "Oak Wood", "OEX"),
		glyphRow("Birch Letter A", "Birch", "BA"),
	}

	fonts, missing := New(table, rows, DefaultOptions(), nil).Alphabet()

	require.Len(t, fonts, 2)
	oak := fonts[0]
	assert.Equal(t, "Oak Wood", oak.Font.Name)
	require.Len(t, oak.Entries, 2)

	a := oak.Entries[0]
	assert.Equal(t, "oak_wood_a", a.ID)
	assert.Equal(t, "Oak Wood A", a.DisplayName)
	assert.Equal(t, "OA", a.Texture)
	assert.Equal(t, []string{"alphabet/oak_wood", "wood", "natural"}, a.Tags)
	assert.Equal(t, []string{"flammable"}, a.Properties)
	assert.Equal(t, HeadInput("mini_oak_planks"), a.Recipe.Input)

	assert.Equal(t, "oak_wood_exclamation", oak.Entries[1].ID)
	assert.Equal(t, "Oak Wood !", oak.Entries[1].DisplayName)

	birch := fonts[1]
	assert.Equal(t, []string{"alphabet/birch", "wood"}, birch.Entries[0].Tags)
	assert.Empty(t, birch.Entries[0].Properties)

	assert.Equal(t, []FontMissing{
		{Font: "Oak Wood", Suffixes: []string{"B"}},
		{Font: "Birch", Suffixes: []string{"B", "Exclamation Mark"}},
	}, missing)
}

func TestAlphabet_LogsMissingGlyphs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	table := loadTable(t, testTable)
	rows := []catalog.Row{glyphRow("Oak Wood Letter A", "Oak Wood", "OA")}

	New(table, rows, DefaultOptions(), zap.New(core).Sugar()).Alphabet()

	var oakMissing []interface{}
	for _, entry := range logs.FilterMessage("Glyph not found").All() {
		fields := entry.ContextMap()
		if fields[logger.FieldFont] == "Oak Wood" {
			oakMissing = append(oakMissing, fields[logger.FieldGlyph])
		}
	}
	assert.Equal(t, []interface{}{"B", "Exclamation Mark"}, oakMissing)
}

func TestAlphabet_SuffixNeedsLeadingSpace(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		glyphRow("Oak WoodA", "Oak Wood", "GLUED"),
		glyphRow("Oak Wood Letter A", "Oak Wood", "SPACED"),
	}

	fonts, _ := New(table, rows, DefaultOptions(), nil).Alphabet()
	require.Len(t, fonts, 1)
	assert.Equal(t, "SPACED", fonts[0].Entries[0].Texture)
}

func TestAlphabet_FirstMatchingRowWins(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		glyphRow("Oak Wood A", "Oak Wood", "FIRST"),
		glyphRow("Oak Wood Letter A", "Oak Wood", "SECOND"),
	}

	fonts, _ := New(table, rows, DefaultOptions(), nil).Alphabet()
	assert.Equal(t, "FIRST", fonts[0].Entries[0].Texture)
}

func TestAlphabet_RowFilter(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		row("Oak Wood A", "blocks", "Font (Oak Wood)", "WRONG_CATEGORY"),
		row("Oak Wood A", AlphabetCategory, "Font (Birch)", "WRONG_FONT"),
		glyphRow("Standard Galactic Oak Wood A", "Oak Wood", "GALACTIC"),
		glyphRow("Oak Wood A", "Oak Wood", ""),
		glyphRow("Oak Wood Letter A", "Oak Wood", "RIGHT"),
	}

	fonts, _ := New(table, rows, DefaultOptions(), nil).Alphabet()
	require.NotEmpty(t, fonts)
	assert.Equal(t, "Oak Wood", fonts[0].Font.Name)
	assert.Equal(t, "RIGHT", fonts[0].Entries[0].Texture)
}

func TestAlphabet_RuneNumbering(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		glyphRow("Oak Wood Rune", "Oak Wood", "R0"),
		glyphRow("Standard Galactic Rune", "Oak Wood", "SG"),
		glyphRow("Oak Wood Rune", "Oak Wood", "R1"),
		glyphRow("Oak Wood Letter A", "Oak Wood", "A"),
		glyphRow("Oak Wood Rune", "Oak Wood", "R2"),
	}

	fonts, _ := New(table, rows, DefaultOptions(), nil).Alphabet()
	require.Len(t, fonts, 1)

	var runes []Entry
	for _, e := range fonts[0].Entries {
		if e.DisplayName == "Oak Wood Rune" {
			runes = append(runes, e)
		}
	}
	require.Len(t, runes, 3)
	for i, want := range []string{"R0", "R1", "R2"} {
		assert.Equal(t, "oak_wood_"+RuneSuffix(i), runes[i].ID)
		assert.Equal(t, want, runes[i].Texture)
	}

	// glyphs come before runes
	assert.Equal(t, "oak_wood_a", fonts[0].Entries[0].ID)
}

func TestAlphabet_DuplicateRunesKept(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		glyphRow("Oak Wood Rune", "Oak Wood", "SAME"),
		glyphRow("Oak Wood Rune", "Oak Wood", "SAME"),
	}

	fonts, _ := New(table, rows, DefaultOptions(), nil).Alphabet()
	require.Len(t, fonts, 1)
	require.Len(t, fonts[0].Entries, 2)
	assert.Equal(t, "oak_wood_rune_0", fonts[0].Entries[0].ID)
	assert.Equal(t, "oak_wood_rune_1", fonts[0].Entries[1].ID)
}

func TestRun_EmptyRoster(t *testing.T) {
	table := loadTable(t, `
materials = []
[material_properties]
[font_to_mini_block]
`)
	result, err := Run(context.Background(), table, []catalog.Row{row("Oak Planks", "blocks", "", "TEXA")}, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Materials)
	assert.Empty(t, result.MissingMaterials)
}

func TestAlphabet_EmptyFontOmitted(t *testing.T) {
	table := loadTable(t, testTable)
	fonts, missing := New(table, nil, DefaultOptions(), nil).Alphabet()

	assert.Empty(t, fonts)
	require.Len(t, missing, 2)
	assert.Equal(t, []string{"A", "B", "Exclamation Mark"}, missing[0].Suffixes)
}

func TestRun_SkipAlphabet(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{glyphRow("Oak Wood A", "Oak Wood", "OA")}

	opts := DefaultOptions()
	opts.SkipAlphabet = true
	result, err := Run(context.Background(), table, rows, opts)
	require.NoError(t, err)
	assert.Empty(t, result.Fonts)
	assert.Empty(t, result.MissingGlyphs)
	assert.Len(t, result.MissingMaterials, 4)
}

func TestRun_Counts(t *testing.T) {
	table := loadTable(t, testTable)
	rows := []catalog.Row{
		glyphRow("Oak Wood A", "Oak Wood", "OA"),
		glyphRow("Oak Wood Rune", "Oak Wood", "OR"),
		glyphRow("Birch B", "Birch", "BB"),
	}

	result, err := Run(context.Background(), table, rows, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, result.AlphabetCount())
	assert.Equal(t, 4, result.MissingGlyphCount())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	core, logs := observer.New(zapcore.WarnLevel)
	saved := logger.Logger
	logger.Logger = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Logger = saved })

	_, err := Run(ctx, loadTable(t, testTable), nil, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	warned := logs.FilterMessage("Generation cancelled before mini blocks").All()
	require.Len(t, warned, 1)
	assert.Contains(t, warned[0].ContextMap(), logger.FieldError)
}

func TestRun_NilTable(t *testing.T) {
	_, err := Run(context.Background(), nil, nil, DefaultOptions())
	assert.Error(t, err)
}
