package generate

import (
	"strconv"
	"strings"

	"github.com/teranos/headsmith/resolve"
	"github.com/teranos/headsmith/rules"
)

// DisplayPrefix prefixes every mini block display name
const DisplayPrefix = "Mini "

// InputKind says what a stonecutter recipe consumes
type InputKind int

const (
	// InputMaterial consumes a vanilla material
	InputMaterial InputKind = iota
	// InputHead consumes another generated head
	InputHead
)

// String returns the YAML key for the input kind
func (k InputKind) String() string {
	switch k {
	case InputMaterial:
		return "material"
	case InputHead:
		return "head"
	default:
		return "unknown"
	}
}

// Input is a recipe ingredient reference
type Input struct {
	Kind InputKind
	Ref  string
}

// MaterialInput references a vanilla material
func MaterialInput(material string) Input {
	return Input{Kind: InputMaterial, Ref: material}
}

// HeadInput references a generated head by id
func HeadInput(id string) Input {
	return Input{Kind: InputHead, Ref: id}
}

// Recipe is the stonecutter recipe that produces an entry
type Recipe struct {
	ID    string
	Input Input
}

// Entry is one generated head
type Entry struct {
	ID          string
	DisplayName string
	Texture     string
	Tags        []string
	Properties  []string
	Recipe      Recipe
}

// MaterialID derives a mini block id: QUARTZ_BLOCK -> mini_quartz_block
func MaterialID(material string) string {
	return rules.MiniBlockPrefix + strings.ToLower(material)
}

// MaterialDisplayName derives a mini block name: QUARTZ_BLOCK -> Mini Quartz Block
func MaterialDisplayName(material string) string {
	return DisplayPrefix + resolve.DisplayName(material)
}

// GlyphID derives an alphabet entry id: ("Oak Wood", "a") -> oak_wood_a
func GlyphID(font rules.Font, yamlSuffix string) string {
	return font.ID() + "_" + yamlSuffix
}

// RuneSuffix is the yaml suffix of the n-th rune of a font
func RuneSuffix(n int) string {
	return "rune_" + strconv.Itoa(n)
}
