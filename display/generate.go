package display

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/headsmith/emit"
	"github.com/teranos/headsmith/generate"
)

// GenerateSummary is the JSON shape of a generation run
type GenerateSummary struct {
	RunID     string           `json:"run_id"`
	Materials MaterialSummary  `json:"materials"`
	Alphabet  *AlphabetSummary `json:"alphabet,omitempty"`
	Files     *emit.Report     `json:"files,omitempty"`
}

// MaterialSummary counts the mini block roster
type MaterialSummary struct {
	Generated int      `json:"generated"`
	Missing   []string `json:"missing"`
}

// AlphabetSummary counts alphabet entries across fonts
type AlphabetSummary struct {
	Generated int                 `json:"generated"`
	Files     int                 `json:"files"`
	Missing   int                 `json:"missing"`
	ByFont    []emit.FontManifest `json:"missing_by_font"`
}

// NewGenerateSummary collects the counts printed after a run. alphabet is
// false when the alphabet pass was skipped.
func NewGenerateSummary(runID string, result *generate.Result, report *emit.Report, alphabet bool) GenerateSummary {
	manifest := emit.NewManifest(result)
	s := GenerateSummary{
		RunID:     runID,
		Materials: MaterialSummary{Generated: len(result.Materials), Missing: manifest.Materials},
		Files:     report,
	}
	if alphabet {
		s.Alphabet = &AlphabetSummary{
			Generated: result.AlphabetCount(),
			Files:     len(result.Fonts),
			Missing:   result.MissingGlyphCount(),
			ByFont:    manifest.Fonts,
		}
	}
	return s
}

// PrintGenerate writes the human summary of a run
func PrintGenerate(w io.Writer, s GenerateSummary) {
	pterm.Fprintln(w, pterm.Sprintf("Mini blocks: Generated %s entries, %s missing",
		pterm.Green(s.Materials.Generated), missingColor(len(s.Materials.Missing))))
	if len(s.Materials.Missing) > 0 {
		pterm.Fprintln(w, "Missing: "+strings.Join(s.Materials.Missing, ", "))
	}

	if s.Alphabet == nil {
		return
	}

	if s.Files != nil {
		for _, f := range s.Files.Fonts {
			pterm.Fprintln(w, pterm.Sprintf("  %s: %d entries", filepath.Base(f.Path), f.Entries))
		}
	}

	if len(s.Alphabet.ByFont) > 0 {
		pterm.Fprintln(w, "Missing characters by font:")
		for _, f := range s.Alphabet.ByFont {
			pterm.Fprintln(w, pterm.Sprintf("  %s: %s", f.Font, strings.Join(f.Missing, ", ")))
		}
	}

	pterm.Fprintln(w, pterm.Sprintf("Alphabet: Generated %s entries across %d files, %s missing",
		pterm.Green(s.Alphabet.Generated), s.Alphabet.Files, missingColor(s.Alphabet.Missing)))
}

func missingColor(n int) string {
	if n == 0 {
		return pterm.Green(n)
	}
	return pterm.Yellow(n)
}
