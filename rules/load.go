package rules

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/teranos/headsmith/errors"
)

// SupportedFormat is the semver constraint a rule table's [meta] format must satisfy
const SupportedFormat = "^1"

// Section names as they appear in the TOML document
const (
	SectionMeta               = "meta"
	SectionMaterialProperties = "material_properties"
	SectionFonts              = "font_to_mini_block"
	SectionTagPatterns        = "material_tag_patterns"
	SectionTagLists           = "material_tag_lists"
	SectionMaterials          = "materials"
	SectionAlphabet           = "alphabet"
)

var requiredSections = []string{SectionMaterialProperties, SectionFonts, SectionMaterials}

// document is the raw decode target; ordering comes from toml.MetaData
type document struct {
	Meta struct {
		Format string `toml:"format"`
	} `toml:"meta"`
	MaterialProperties map[string][]string            `toml:"material_properties"`
	FontToMiniBlock    map[string]string              `toml:"font_to_mini_block"`
	TagPatterns        map[string][]string            `toml:"material_tag_patterns"`
	TagLists           map[string][]string            `toml:"material_tag_lists"`
	Materials          []string                       `toml:"materials"`
	Alphabet           map[string]map[string][]string `toml:"alphabet"`
}

// Load reads and validates the rule table at path
func Load(path string, log *zap.SugaredLogger) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrNotFound, "rule table %s", path),
				"pass --rules or set generate.rules in headsmith.toml")
		}
		return nil, errors.Wrapf(err, "failed to read rule table %s", path)
	}

	table, err := Parse(data, log)
	if err != nil {
		return nil, errors.Wrapf(err, "rule table %s", path)
	}
	return table, nil
}

// Parse decodes and validates a rule table document
func Parse(data []byte, log *zap.SugaredLogger) (*Table, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	var doc document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.Wrap(errors.ErrInvalidRuleTable, err.Error()), "failed to decode rule table")
	}

	for _, section := range requiredSections {
		if !md.IsDefined(section) {
			return nil, errors.NewRuleTableError(section, "missing required section %q", section)
		}
	}

	for _, key := range md.Undecoded() {
		log.Warnw("Ignoring unknown rule table key", "key", key.String())
	}

	order := collectOrder(md)

	table := &Table{
		Format:             doc.Meta.Format,
		MaterialProperties: doc.MaterialProperties,
		Materials:          doc.Materials,
	}

	if err := checkFormat(table.Format); err != nil {
		return nil, err
	}

	for _, name := range orderedKeys(order.fonts, doc.FontToMiniBlock) {
		table.Fonts = append(table.Fonts, Font{Name: name, BaseID: doc.FontToMiniBlock[name]})
	}

	for _, tag := range orderedKeys(order.patterns, doc.TagPatterns) {
		rule, err := NewPatternRule(tag, doc.TagPatterns[tag]...)
		if err != nil {
			return nil, errors.NewRuleTableError(SectionTagPatterns, "tag %q: %v", tag, err)
		}
		table.TagPatterns = append(table.TagPatterns, rule)
	}

	for _, tag := range orderedKeys(order.lists, doc.TagLists) {
		table.TagLists = append(table.TagLists, NewListRule(tag, doc.TagLists[tag]...))
	}

	glyphs, err := collectAlphabet(doc.Alphabet, order.alphabet, log)
	if err != nil {
		return nil, err
	}
	table.Alphabet = glyphs

	if err := table.Validate(); err != nil {
		return nil, err
	}

	log.Debugw("Loaded rule table",
		"materials", len(table.Materials),
		"fonts", len(table.Fonts),
		"glyphs", len(table.Alphabet),
		"pattern_tags", len(table.TagPatterns),
		"list_tags", len(table.TagLists))

	return table, nil
}

type keyOrder struct {
	fonts    []string
	patterns []string
	lists    []string
	alphabet map[string][]string
}

// collectOrder recovers declaration order from the decoder's key list
func collectOrder(md toml.MetaData) keyOrder {
	order := keyOrder{alphabet: make(map[string][]string)}
	for _, key := range md.Keys() {
		switch {
		case len(key) == 2 && key[0] == SectionFonts:
			order.fonts = append(order.fonts, key[1])
		case len(key) == 2 && key[0] == SectionTagPatterns:
			order.patterns = append(order.patterns, key[1])
		case len(key) == 2 && key[0] == SectionTagLists:
			order.lists = append(order.lists, key[1])
		case len(key) == 3 && key[0] == SectionAlphabet:
			order.alphabet[key[1]] = append(order.alphabet[key[1]], key[2])
		}
	}
	return order
}

// orderedKeys returns the keys of m in declared order. Keys the metadata did
// not report are appended sorted so the result stays deterministic.
func orderedKeys[V any](declared []string, m map[string]V) []string {
	seen := make(map[string]bool, len(m))
	keys := make([]string, 0, len(m))
	for _, k := range declared {
		if _, ok := m[k]; ok && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// collectAlphabet flattens the alphabet sections in AlphabetSections order.
// A suffix declared twice keeps its first position and takes the later value.
func collectAlphabet(sections map[string]map[string][]string, order map[string][]string, log *zap.SugaredLogger) ([]Glyph, error) {
	known := make(map[string]bool, len(AlphabetSections))
	for _, s := range AlphabetSections {
		known[s] = true
	}
	var unknown []string
	for s := range sections {
		if !known[s] {
			unknown = append(unknown, s)
		}
	}
	sort.Strings(unknown)
	for _, s := range unknown {
		log.Warnw("Ignoring unknown alphabet section", "section", s)
	}

	var glyphs []Glyph
	index := make(map[string]int)

	for _, section := range AlphabetSections {
		entries, ok := sections[section]
		if !ok {
			continue
		}
		for _, suffix := range orderedKeys(order[section], entries) {
			value := entries[suffix]
			if len(value) != 2 {
				return nil, errors.NewRuleTableError(SectionAlphabet+"."+section,
					"glyph %q must be [yaml_suffix, display_char], got %d values", suffix, len(value))
			}
			glyph := Glyph{Suffix: suffix, YAMLSuffix: value[0], Display: value[1]}
			if i, dup := index[suffix]; dup {
				glyphs[i] = glyph
				continue
			}
			index[suffix] = len(glyphs)
			glyphs = append(glyphs, glyph)
		}
	}
	return glyphs, nil
}

func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	version, err := semver.NewVersion(format)
	if err != nil {
		return errors.NewRuleTableError(SectionMeta, "format %q is not a semantic version", format)
	}
	constraint, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return errors.Wrap(err, "invalid supported format constraint")
	}
	if !constraint.Check(version) {
		return errors.NewRuleTableError(SectionMeta, "format %s is not supported (want %s)", format, SupportedFormat)
	}
	return nil
}

// Validate checks the invariants the engine relies on
func (t *Table) Validate() error {
	seen := make(map[string]bool, len(t.Materials))
	for i, m := range t.Materials {
		if strings.TrimSpace(m) == "" {
			return errors.NewRuleTableError(SectionMaterials, "material #%d is empty", i)
		}
		// Entry ids derive from the material, so a repeat would collide in the output mapping
		if seen[m] {
			return errors.NewRuleTableError(SectionMaterials, "material %q is listed twice", m)
		}
		seen[m] = true
	}

	fontIDs := make(map[string]string, len(t.Fonts))
	for _, f := range t.Fonts {
		if strings.TrimSpace(f.Name) == "" {
			return errors.NewRuleTableError(SectionFonts, "font name is empty")
		}
		if strings.TrimSpace(f.BaseID) == "" {
			return errors.NewRuleTableError(SectionFonts, "font %q has no base mini block", f.Name)
		}
		if other, dup := fontIDs[f.ID()]; dup {
			return errors.NewRuleTableError(SectionFonts, "fonts %q and %q share the id %q", other, f.Name, f.ID())
		}
		fontIDs[f.ID()] = f.Name
	}

	for _, rule := range t.TagPatterns {
		if len(rule.Patterns) == 0 {
			return errors.NewRuleTableError(SectionTagPatterns, "tag %q has no patterns", rule.Tag)
		}
	}

	yamlSuffixes := make(map[string]string, len(t.Alphabet))
	for _, g := range t.Alphabet {
		if g.Suffix == "" || g.YAMLSuffix == "" {
			return errors.NewRuleTableError(SectionAlphabet, "glyph %q has an empty suffix", g.Suffix)
		}
		if strings.HasPrefix(g.YAMLSuffix, "rune_") {
			return errors.NewRuleTableError(SectionAlphabet, "glyph %q uses the reserved yaml suffix %q", g.Suffix, g.YAMLSuffix)
		}
		if other, dup := yamlSuffixes[g.YAMLSuffix]; dup {
			return errors.NewRuleTableError(SectionAlphabet, "glyphs %q and %q share the yaml suffix %q", other, g.Suffix, g.YAMLSuffix)
		}
		yamlSuffixes[g.YAMLSuffix] = g.Suffix
	}

	return nil
}
