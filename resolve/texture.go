package resolve

import (
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/headsmith/catalog"
	"github.com/teranos/headsmith/logger"
)

// Tier is one level of the texture fallback. A row satisfies the tier when its
// markers contain every Require entry; an empty Require accepts any row.
type Tier struct {
	Name    string
	Require []string
}

// TextureConfig configures the texture fallback search
type TextureConfig struct {
	// Categories are tried in order for every candidate name
	Categories []string
	// Tiers are tried in order within each (name, category) candidate set
	Tiers []Tier
}

// DefaultTextureConfig prefers full blocks over decorations and vanilla
// inner-layer renders over everything else.
func DefaultTextureConfig() TextureConfig {
	return TextureConfig{
		Categories: []string{"blocks", "decoration"},
		Tiers: []Tier{
			{Name: "vanilla+inner", Require: []string{catalog.MarkerVanillaBlock, catalog.MarkerInnerLayerBlock}},
			{Name: "vanilla", Require: []string{catalog.MarkerVanillaBlock}},
			{Name: "inner", Require: []string{catalog.MarkerInnerLayerBlock}},
			{Name: "first"},
		},
	}
}

// Outcome is the result of a texture lookup: resolved with a texture, or not.
type Outcome struct {
	Texture  string
	Resolved bool

	// Set when resolved
	Row      *catalog.Row
	Name     string
	Category string
	Tier     string
}

// Unresolved is the outcome when no candidate matches
var Unresolved = Outcome{}

// TextureResolver selects catalog rows for candidate names
type TextureResolver struct {
	cfg    TextureConfig
	byName map[string][]*catalog.Row
	log    *zap.SugaredLogger
	trace  bool
}

// NewTextureResolver indexes rows by lower-cased name. Rows without a texture
// are left out of the index; index order follows catalog order.
func NewTextureResolver(rows []catalog.Row, cfg TextureConfig, log *zap.SugaredLogger) *TextureResolver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	byName := make(map[string][]*catalog.Row)
	for i := range rows {
		row := &rows[i]
		if !row.HasTexture() {
			continue
		}
		key := strings.ToLower(row.Name)
		byName[key] = append(byName[key], row)
	}

	return &TextureResolver{cfg: cfg, byName: byName, log: log}
}

// WithTrace enables per-candidate debug logging
func (r *TextureResolver) WithTrace(enabled bool) *TextureResolver {
	r.trace = enabled
	return r
}

// Resolve walks candidates in order, each over the configured categories, and
// returns the first row satisfying the highest tier in that (name, category)
// set. Moving to the next set only happens when the current one is empty.
func (r *TextureResolver) Resolve(candidates []string) Outcome {
	for _, name := range candidates {
		rows := r.byName[strings.ToLower(name)]
		if len(rows) == 0 {
			if r.trace {
				r.log.Debugw("No catalog rows", logger.FieldCandidate, name)
			}
			continue
		}

		for _, category := range r.cfg.Categories {
			set := filterCategory(rows, category)
			if len(set) == 0 {
				continue
			}

			for _, tier := range r.cfg.Tiers {
				for _, row := range set {
					if row.Markers.HasAll(tier.Require...) {
						if r.trace {
							r.log.Debugw("Matched catalog row",
								logger.FieldCandidate, name,
								logger.FieldCategory, category,
								logger.FieldTier, tier.Name,
								logger.FieldLine, row.Line,
								logger.FieldTexture, row.Texture,
								"markers", row.Markers.Sorted())
						}
						return Outcome{
							Texture:  row.Texture,
							Resolved: true,
							Row:      row,
							Name:     name,
							Category: category,
							Tier:     tier.Name,
						}
					}
				}
			}
		}
	}
	return Unresolved
}

func filterCategory(rows []*catalog.Row, category string) []*catalog.Row {
	var out []*catalog.Row
	for _, row := range rows {
		if row.Category == category {
			out = append(out, row)
		}
	}
	return out
}
