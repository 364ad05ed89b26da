package resolve

import (
	"strings"
	"unicode"
)

// NameConfig configures candidate name derivation
type NameConfig struct {
	// Colors are checked in order; the first "<Color> " prefix wins
	Colors []string
	// Aliases maps a base display name to extra names tried after it
	Aliases map[string][]string
}

// DefaultColors are the sixteen dye colours in catalog order
var DefaultColors = []string{
	"White",
	"Orange",
	"Magenta",
	"Light Blue",
	"Yellow",
	"Lime",
	"Pink",
	"Gray",
	"Light Gray",
	"Cyan",
	"Purple",
	"Blue",
	"Brown",
	"Green",
	"Red",
	"Black",
}

// DefaultNameConfig returns the built-in colour and alias tables
func DefaultNameConfig() NameConfig {
	return NameConfig{
		Colors: append([]string(nil), DefaultColors...),
		Aliases: map[string][]string{
			"Hay Block": {"Hay Bale"},
		},
	}
}

// NameResolver derives catalog search names from material identifiers
type NameResolver struct {
	cfg NameConfig
}

// NewNameResolver creates a resolver over cfg
func NewNameResolver(cfg NameConfig) *NameResolver {
	return &NameResolver{cfg: cfg}
}

// Candidates returns the names material may appear under, most specific first.
// Callers try them in order and stop at the first one that resolves.
//
//	ORANGE_CONCRETE -> ["Orange Concrete", "Concrete (orange)"]
//	HAY_BLOCK       -> ["Hay Block", "Hay Bale"]
func (r *NameResolver) Candidates(material string) []string {
	base := DisplayName(material)
	names := []string{base}

	for _, color := range r.cfg.Colors {
		if rest, ok := strings.CutPrefix(base, color+" "); ok {
			names = append(names, rest+" ("+strings.ToLower(color)+")")
			break
		}
	}

	names = append(names, r.cfg.Aliases[base]...)
	return names
}

// DisplayName converts a material identifier to its title-cased display form:
// OAK_PLANKS -> Oak Planks
func DisplayName(material string) string {
	return TitleCase(strings.ReplaceAll(material, "_", " "))
}

// TitleCase upper-cases every letter that follows a non-letter and lower-cases
// the rest, so "3D_ITEM" and "it's" become "3D_Item" and "It'S".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
