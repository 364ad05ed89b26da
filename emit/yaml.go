package emit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/generate"
	"github.com/teranos/headsmith/resolve"
)

const (
	// RootKey is the mapping every head file nests its entries under
	RootKey = "heads"

	materialsHeader = "# Generated Mini Blocks\n\n"
	missingRule     = "# =========================================================="
	missingTitle    = "# MISSING BLOCKS - Could not find textures in CSV:"
)

// EncodeMaterials writes the mini block file: header, entries in roster order,
// then a comment block naming every unresolved material.
func EncodeMaterials(w io.Writer, entries []generate.Entry, missing []string, nameColor string) error {
	var buf bytes.Buffer
	buf.WriteString(materialsHeader)
	if err := encodeHeads(&buf, entries, nameColor); err != nil {
		return err
	}

	if len(missing) > 0 {
		buf.WriteString("\n" + missingRule + "\n" + missingTitle + "\n" + missingRule + "\n")
		for _, m := range missing {
			buf.WriteString("# " + m + "\n")
		}
	}

	_, err := w.Write(buf.Bytes())
	return errors.Wrap(err, "failed to write mini block file")
}

// EncodeFont writes one alphabet file
func EncodeFont(w io.Writer, font generate.FontEntries, nameColor string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Generated %s Alphabet Blocks\n\n", FontTitle(font.Font.ID()))
	if err := encodeHeads(&buf, font.Entries, nameColor); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return errors.Wrapf(err, "failed to write alphabet file for %s", font.Font.Name)
}

// FontTitle turns a font id back into a heading: cherry_planks -> Cherry Planks
func FontTitle(fontID string) string {
	return resolve.TitleCase(strings.ReplaceAll(fontID, "_", " "))
}

func encodeHeads(w io.Writer, entries []generate.Entry, nameColor string) error {
	heads := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		heads.Content = append(heads.Content, plain(e.ID), entryNode(e, nameColor))
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{plain(RootKey), heads}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode heads")
	}
	return errors.Wrap(enc.Close(), "failed to flush heads")
}

func entryNode(e generate.Entry, nameColor string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content,
		plain("texture"), quoted(e.Texture),
		plain("name"), quoted(nameColor+e.DisplayName),
	)
	if len(e.Tags) > 0 {
		n.Content = append(n.Content, plain("tags"), list(e.Tags))
	}
	if len(e.Properties) > 0 {
		n.Content = append(n.Content, plain("properties"), list(e.Properties))
	}

	input := &yaml.Node{
		Kind:    yaml.MappingNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{plain(e.Recipe.Input.Kind.String()), quoted(e.Recipe.Input.Ref)},
	}
	recipe := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{plain("id"), quoted(e.Recipe.ID), plain("input"), input},
	}
	recipes := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			plain("stonecutter"),
			{Kind: yaml.SequenceNode, Content: []*yaml.Node{recipe}},
		},
	}

	n.Content = append(n.Content, plain("recipes"), recipes)
	return n
}

func plain(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

func list(items []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range items {
		n.Content = append(n.Content, plain(item))
	}
	return n
}
