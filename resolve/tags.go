package resolve

import "github.com/teranos/headsmith/rules"

// TagInferer applies the rule table's tag rules to materials
type TagInferer struct {
	patterns []rules.PatternRule
	lists    []rules.ListRule
}

// NewTagInferer creates an inferer over the table's tag rules
func NewTagInferer(table *rules.Table) *TagInferer {
	return &TagInferer{patterns: table.TagPatterns, lists: table.TagLists}
}

// TagsFor returns the tags that apply to material: every pattern tag in table
// order, then every list tag in table order. A tag named by both a pattern rule
// and a list rule appears twice; callers get exactly what the table says.
func (t *TagInferer) TagsFor(material string) []string {
	var tags []string
	for _, rule := range t.patterns {
		if rule.Match(material) {
			tags = append(tags, rule.Tag)
		}
	}
	for _, rule := range t.lists {
		if rule.Contains(material) {
			tags = append(tags, rule.Tag)
		}
	}
	return tags
}
