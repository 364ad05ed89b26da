package generate

import (
	"slices"

	"go.uber.org/zap"

	"github.com/teranos/headsmith/catalog"
	"github.com/teranos/headsmith/logger"
	"github.com/teranos/headsmith/resolve"
	"github.com/teranos/headsmith/rules"
)

// Options carries the resolution configuration for a Generator
type Options struct {
	Names    resolve.NameConfig
	Textures resolve.TextureConfig
	// Trace logs every candidate and tier tried
	Trace bool
	// SkipAlphabet limits Run to the material roster
	SkipAlphabet bool
}

// DefaultOptions returns the built-in colour, alias, category and tier tables
func DefaultOptions() Options {
	return Options{
		Names:    resolve.DefaultNameConfig(),
		Textures: resolve.DefaultTextureConfig(),
	}
}

// Generator composes entries for one rule table and catalog
type Generator struct {
	table    *rules.Table
	rows     []catalog.Row
	names    *resolve.NameResolver
	tags     *resolve.TagInferer
	textures *resolve.TextureResolver
	log      *zap.SugaredLogger
}

// New creates a Generator. rows are indexed once and must not change afterwards.
func New(table *rules.Table, rows []catalog.Row, opts Options, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{
		table:    table,
		rows:     rows,
		names:    resolve.NewNameResolver(opts.Names),
		tags:     resolve.NewTagInferer(table),
		textures: resolve.NewTextureResolver(rows, opts.Textures, log.Named("texture")).WithTrace(opts.Trace),
		log:      log,
	}
}

// Material composes the mini block entry for an already-resolved material
func (g *Generator) Material(material, texture string) Entry {
	id := MaterialID(material)
	return Entry{
		ID:          id,
		DisplayName: MaterialDisplayName(material),
		Texture:     texture,
		Tags:        g.tags.TagsFor(material),
		Properties:  slices.Clone(g.table.Properties(material)),
		Recipe:      Recipe{ID: id, Input: MaterialInput(material)},
	}
}

// Materials resolves the whole roster in table order. It returns the entries
// for resolved materials and the identifiers of the unresolved ones.
func (g *Generator) Materials() (entries []Entry, missing []string) {
	for _, material := range g.table.Materials {
		candidates := g.names.Candidates(material)
		outcome := g.textures.Resolve(candidates)
		if !outcome.Resolved {
			g.log.Debugw("Material unresolved", logger.FieldMaterial, material, "candidates", candidates)
			missing = append(missing, material)
			continue
		}

		g.log.Debugw("Material resolved",
			logger.FieldMaterial, material,
			logger.FieldCandidate, outcome.Name,
			logger.FieldCategory, outcome.Category,
			logger.FieldTier, outcome.Tier)
		entries = append(entries, g.Material(material, outcome.Texture))
	}
	return entries, missing
}
