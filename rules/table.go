package rules

import (
	"strings"

	"github.com/teranos/headsmith/catalog"
)

// AlphabetSections lists the [alphabet.*] subsections in the order glyphs are collected
var AlphabetSections = []string{
	"letters",
	"numbers",
	"punctuation",
	"brackets",
	"arrows",
	"accented",
	"greek",
	"cyrillic",
	"zodiac",
	"gender",
}

// MiniBlockPrefix prefixes every mini block id, e.g. mini_oak_planks
const MiniBlockPrefix = "mini_"

// Table is the validated, read-only rule table for one run
type Table struct {
	Format             string
	MaterialProperties map[string][]string
	Fonts              []Font
	TagPatterns        []PatternRule
	TagLists           []ListRule
	Materials          []string
	Alphabet           []Glyph
}

// Font maps an alphabet font to the mini block its glyphs are cut from
type Font struct {
	Name   string // e.g. "Oak Wood"
	BaseID string // e.g. "mini_oak_planks"
}

// ID returns the font identifier used in entry ids and file names: "Oak Wood" -> "oak_wood"
func (f Font) ID() string {
	return strings.ReplaceAll(strings.ToLower(f.Name), " ", "_")
}

// Marker returns the catalog tag that scopes rows to this font
func (f Font) Marker() string {
	return catalog.FontMarker(f.Name)
}

// BaseMaterial converts the base mini block id back to its material: mini_oak_planks -> OAK_PLANKS
func (f Font) BaseMaterial() string {
	return strings.ToUpper(strings.ReplaceAll(f.BaseID, MiniBlockPrefix, ""))
}

// PatternRule applies Tag to materials matching any of its glob patterns
type PatternRule struct {
	Tag      string
	Patterns []string
	globs    []Glob
}

// Match reports whether material matches one of the rule's patterns.
// Patterns are tried in declared order.
func (r PatternRule) Match(material string) bool {
	for _, g := range r.globs {
		if g.Match(material) {
			return true
		}
	}
	return false
}

// ListRule applies Tag to an explicit set of materials
type ListRule struct {
	Tag     string
	Members []string
	set     map[string]struct{}
}

// Contains reports whether material is listed
func (r ListRule) Contains(material string) bool {
	_, ok := r.set[material]
	return ok
}

// Glyph is one alphabet character: catalog rows named "<font> <Suffix>" become
// entries "<fontId>_<YAMLSuffix>" displayed as "<font> <Display>".
type Glyph struct {
	Suffix     string
	YAMLSuffix string
	Display    string
}

// Properties returns the declared properties of material, or nil
func (t *Table) Properties(material string) []string {
	return t.MaterialProperties[material]
}

// NewPatternRule builds a pattern rule, compiling its patterns
func NewPatternRule(tag string, patterns ...string) (PatternRule, error) {
	rule := PatternRule{Tag: tag, Patterns: patterns}
	for _, p := range patterns {
		g, err := CompileGlob(p)
		if err != nil {
			return PatternRule{}, err
		}
		rule.globs = append(rule.globs, g)
	}
	return rule, nil
}

// NewListRule builds a membership rule
func NewListRule(tag string, members ...string) ListRule {
	rule := ListRule{Tag: tag, Members: members, set: make(map[string]struct{}, len(members))}
	for _, m := range members {
		rule.set[m] = struct{}{}
	}
	return rule
}
