package emit

import (
	"encoding/json"
	"io"

	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/generate"
)

// Manifest lists everything a run could not resolve
type Manifest struct {
	Materials []string       `json:"materials"`
	Fonts     []FontManifest `json:"fonts"`
}

// FontManifest lists the unresolved glyph suffixes of one font
type FontManifest struct {
	Font    string   `json:"font"`
	Missing []string `json:"missing"`
}

// NewManifest collects the unresolved targets of a result. Lists are never
// nil so consumers always see arrays.
func NewManifest(result *generate.Result) Manifest {
	m := Manifest{
		Materials: append([]string{}, result.MissingMaterials...),
		Fonts:     make([]FontManifest, 0, len(result.MissingGlyphs)),
	}
	for _, f := range result.MissingGlyphs {
		m.Fonts = append(m.Fonts, FontManifest{Font: f.Font, Missing: append([]string{}, f.Suffixes...)})
	}
	return m
}

// EncodeManifest writes the manifest as indented JSON
func EncodeManifest(w io.Writer, m Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(m), "failed to encode manifest")
}
