package generate

import (
	"slices"
	"strings"

	"github.com/teranos/headsmith/catalog"
	"github.com/teranos/headsmith/logger"
	"github.com/teranos/headsmith/rules"
)

const (
	// AlphabetCategory is the catalog category holding glyph rows
	AlphabetCategory = "alphabet"
	// StandardGalactic marks a separate alphabet whose names share suffixes with the regular one
	StandardGalactic = "Standard Galactic"
	// RuneDisplay is the display character of every rune entry
	RuneDisplay = "Rune"

	runeNameSuffix = " " + RuneDisplay
)

// FontEntries are the generated entries of one font, glyphs first then runes
type FontEntries struct {
	Font    rules.Font
	Entries []Entry
}

// FontMissing lists the glyph suffixes a font has no catalog row for
type FontMissing struct {
	Font     string
	Suffixes []string
}

// Alphabet resolves every font's glyphs and runes. Fonts follow rule table
// order; fonts without any entry are left out of fonts, and only fonts with
// unresolved glyphs appear in missing.
func (g *Generator) Alphabet() (fonts []FontEntries, missing []FontMissing) {
	alphabetRows := g.alphabetRows()

	for _, font := range g.table.Fonts {
		entries, missed := g.font(font, alphabetRows)
		if len(entries) > 0 {
			fonts = append(fonts, FontEntries{Font: font, Entries: entries})
		}
		if len(missed) > 0 {
			missing = append(missing, FontMissing{Font: font.Name, Suffixes: missed})
		}
		g.log.Debugw("Font resolved",
			logger.FieldFont, font.Name,
			logger.FieldCount, len(entries),
			logger.FieldMissing, len(missed))
	}
	return fonts, missing
}

func (g *Generator) alphabetRows() []*catalog.Row {
	var out []*catalog.Row
	for i := range g.rows {
		row := &g.rows[i]
		if row.Category != AlphabetCategory || !row.HasTexture() {
			continue
		}
		if strings.Contains(row.Name, StandardGalactic) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (g *Generator) font(font rules.Font, alphabetRows []*catalog.Row) (entries []Entry, missing []string) {
	marker := font.Marker()
	var rows []*catalog.Row
	for _, row := range alphabetRows {
		if row.Markers.Has(marker) {
			rows = append(rows, row)
		}
	}

	base := font.BaseMaterial()
	inherited := inheritance{
		tags:       g.tags.TagsFor(base),
		properties: g.table.Properties(base),
	}

	for _, glyph := range g.table.Alphabet {
		row := findGlyph(rows, glyph.Suffix)
		if row == nil {
			g.log.Debugw("Glyph not found", logger.FieldFont, font.Name, logger.FieldGlyph, glyph.Suffix)
			missing = append(missing, glyph.Suffix)
			continue
		}
		entries = append(entries, glyphEntry(font, glyph.YAMLSuffix, glyph.Display, row.Texture, inherited))
	}

	// Runes share one name but carry distinct textures, so every row counts
	n := 0
	for _, row := range rows {
		if strings.HasSuffix(row.Name, runeNameSuffix) {
			entries = append(entries, glyphEntry(font, RuneSuffix(n), RuneDisplay, row.Texture, inherited))
			n++
		}
	}
	return entries, missing
}

// findGlyph returns the first row named "<anything> <suffix>"
func findGlyph(rows []*catalog.Row, suffix string) *catalog.Row {
	want := " " + suffix
	for _, row := range rows {
		if strings.HasSuffix(row.Name, want) {
			return row
		}
	}
	return nil
}

type inheritance struct {
	tags       []string
	properties []string
}

func glyphEntry(font rules.Font, yamlSuffix, display, texture string, inherited inheritance) Entry {
	id := GlyphID(font, yamlSuffix)
	tags := make([]string, 0, 1+len(inherited.tags))
	tags = append(tags, "alphabet/"+font.ID())
	tags = append(tags, inherited.tags...)

	return Entry{
		ID:          id,
		DisplayName: font.Name + " " + display,
		Texture:     texture,
		Tags:        tags,
		Properties:  slices.Clone(inherited.properties),
		Recipe:      Recipe{ID: id, Input: HeadInput(font.BaseID)},
	}
}
