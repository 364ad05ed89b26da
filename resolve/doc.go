// Package resolve turns material identifiers into catalog textures and tags.
//
// Three components live here:
//
//   - NameResolver derives the catalog names a material may be listed under.
//   - TagInferer applies the rule table's pattern and list tag rules.
//   - TextureResolver picks the single best catalog row for a list of names.
//
// The colour table, alias table, category priority and tier order are plain
// values passed in through NameConfig and TextureConfig. The Default*
// constructors return the values the generator ships with; tests pass
// synthetic ones.
package resolve
