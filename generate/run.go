package generate

import (
	"context"
	"time"

	"github.com/teranos/headsmith/catalog"
	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/logger"
	"github.com/teranos/headsmith/rules"
)

// Result holds everything one run produced, in output order
type Result struct {
	Materials        []Entry
	MissingMaterials []string
	Fonts            []FontEntries
	MissingGlyphs    []FontMissing
}

// AlphabetCount is the number of alphabet entries across all fonts
func (r *Result) AlphabetCount() int {
	n := 0
	for _, f := range r.Fonts {
		n += len(f.Entries)
	}
	return n
}

// MissingGlyphCount is the number of unresolved glyphs across all fonts
func (r *Result) MissingGlyphCount() int {
	n := 0
	for _, f := range r.MissingGlyphs {
		n += len(f.Suffixes)
	}
	return n
}

// Run resolves the material roster and, unless opts.SkipAlphabet is set, every
// font of the alphabet. The context only carries log fields and cancellation
// between the two phases.
func Run(ctx context.Context, table *rules.Table, rows []catalog.Row, opts Options) (*Result, error) {
	if table == nil {
		return nil, errors.New("generate: nil rule table")
	}
	log := logger.WithContext(logger.ComponentLogger("generate"), ctx)
	start := time.Now()

	g := New(table, rows, opts, log)
	result := &Result{}

	if err := ctx.Err(); err != nil {
		log.Warnw("Generation cancelled before mini blocks", logger.FieldError, err)
		return nil, errors.Wrap(err, "generation cancelled")
	}
	result.Materials, result.MissingMaterials = g.Materials()
	log.Infow("Mini blocks generated",
		logger.FieldCount, len(result.Materials),
		logger.FieldMissing, len(result.MissingMaterials))

	if !opts.SkipAlphabet {
		if err := ctx.Err(); err != nil {
			log.Warnw("Generation cancelled before alphabet", logger.FieldError, err)
			return nil, errors.Wrap(err, "generation cancelled")
		}
		result.Fonts, result.MissingGlyphs = g.Alphabet()
		log.Infow("Alphabet generated",
			logger.FieldCount, result.AlphabetCount(),
			"files", len(result.Fonts),
			logger.FieldMissing, result.MissingGlyphCount())
	}

	log.Debugw("Generation finished",
		logger.FieldTotalCount, len(result.Materials)+result.AlphabetCount(),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return result, nil
}
