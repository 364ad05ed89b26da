// Package generate composes head entries from resolved textures.
//
// A Generator holds one run's rule table and catalog. Materials resolves the
// material roster into mini block entries; Alphabet resolves every font's
// glyphs and runes into alphabet entries. Run drives both and returns an
// ordered Result for the emitter.
package generate
