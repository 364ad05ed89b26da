package display

import (
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// ConfigureStyling enables pterm colours only when out is a terminal, NO_COLOR
// is unset and the command is not printing JSON. It reports whether styling
// is on.
func ConfigureStyling(out *os.File, jsonOutput bool) bool {
	if jsonOutput || os.Getenv("NO_COLOR") != "" || out == nil || !term.IsTerminal(int(out.Fd())) {
		pterm.DisableStyling()
		return false
	}
	pterm.EnableStyling()
	return true
}
