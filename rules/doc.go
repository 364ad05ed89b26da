// Package rules loads the generator rule table.
//
// The rule table is a TOML document with these sections:
//
//	[meta]                     optional, format = "1.x.y"
//	[material_properties]      MATERIAL = ["property", ...]
//	[font_to_mini_block]       "Font Name" = "mini_base_material"
//	[material_tag_patterns]    tag = ["*_GLOB", ...]          (optional)
//	[material_tag_lists]       tag = ["MATERIAL", ...]        (optional)
//	materials = ["MATERIAL", ...]
//	[alphabet.<section>]       "Search Suffix" = ["yaml_suffix", "display"]
//
// Declaration order matters: fonts, tag rules and alphabet glyphs are kept in
// the order they appear in the document, because generated output follows it.
// Every section is validated at load; a malformed table never reaches the
// resolution engine.
package rules
