package display

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/headsmith/heads"
)

// PrintCounts writes one line per counted file, the total, and where the
// summary was written.
func PrintCounts(w io.Writer, counts heads.Counts, outputs []string) {
	for _, f := range counts.Files {
		pterm.Fprintln(w, pterm.Sprintf("%s: %d heads", f.File, f.Heads))
	}
	pterm.Fprintln(w)
	pterm.Fprintln(w, pterm.Sprintf("Total: %s heads", pterm.Green(counts.Total)))
	for _, out := range outputs {
		pterm.Fprintln(w, "Written to "+out)
	}
}
