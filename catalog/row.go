// Package catalog reads the head texture catalog CSV.
//
// Columns are positional: name, category, extra, tags, texture id. Extra
// columns after the texture are kept alongside column 2. Rows shorter than
// five columns load without a texture and never match a lookup.
package catalog

import (
	"sort"
	"strings"
)

// Well-known tag markers
const (
	MarkerVanillaBlock    = "Vanilla Block"
	MarkerInnerLayerBlock = "Inner Layer Block"
)

// Column positions in the catalog CSV
const (
	ColName = iota
	ColCategory
	ColExtra
	ColTags
	ColTexture

	// MinColumns is the width a row needs to carry a texture
	MinColumns = ColTexture + 1
)

// Row is one catalog entry. Rows are immutable once loaded.
type Row struct {
	Name     string
	Category string
	Extra    []string
	Tags     string // raw tag text as it appears in the CSV
	Markers  Markers
	Texture  string
	Line     int // 1-based line of the record in the source
}

// HasTexture reports whether the row can satisfy a texture lookup
func (r *Row) HasTexture() bool {
	return r.Texture != ""
}

// NewRow builds a row from raw CSV fields
func NewRow(fields []string, line int) Row {
	row := Row{Line: line}
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	row.Name = get(ColName)
	row.Category = get(ColCategory)
	row.Tags = get(ColTags)
	row.Markers = ParseMarkers(row.Tags)
	if len(fields) >= MinColumns {
		row.Texture = fields[ColTexture]
	}

	if len(fields) > ColExtra {
		row.Extra = append(row.Extra, fields[ColExtra])
	}
	if len(fields) > MinColumns {
		row.Extra = append(row.Extra, fields[MinColumns:]...)
	}
	return row
}

// Markers is the set of tags parsed from a row's tag text
type Markers map[string]struct{}

// ParseMarkers splits tag text on ',', ';' and '|' into a trimmed set
func ParseMarkers(tags string) Markers {
	parts := strings.FieldsFunc(tags, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	if len(parts) == 0 {
		return nil
	}

	m := make(Markers, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			m[p] = struct{}{}
		}
	}
	return m
}

// Has reports whether marker is present
func (m Markers) Has(marker string) bool {
	_, ok := m[marker]
	return ok
}

// HasAll reports whether every marker is present. HasAll() is true.
func (m Markers) HasAll(markers ...string) bool {
	for _, marker := range markers {
		if !m.Has(marker) {
			return false
		}
	}
	return true
}

// Sorted returns the markers in lexical order
func (m Markers) Sorted() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FontMarker returns the marker that scopes alphabet rows to a font
func FontMarker(font string) string {
	return "Font (" + font + ")"
}
