package am

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Generation defaults mirror the data/ layout of the plugin repository
	v.SetDefault("generate.input", "data/heads-db-b64.csv")
	v.SetDefault("generate.output_dir", "data")
	v.SetDefault("generate.rules", "data/generate_config.toml")
	v.SetDefault("generate.no_alphabet", false)
	v.SetDefault("generate.name_color", "&7")
	v.SetDefault("generate.materials_file", "mini_blocks_GENERATED.yml")
	v.SetDefault("generate.alphabet_dir", "alphabet_GENERATED")
	v.SetDefault("generate.manifest_file", "missing_GENERATED.json")

	// Head counting defaults
	v.SetDefault("count.root", "headsmith/src/main/resources")
	v.SetDefault("count.scan_dir", "heads")
	v.SetDefault("count.files", []string{})
	v.SetDefault("count.outputs", []string{
		"docs/util/head-count.json",
		"headsmith/src/main/resources/head-count.json",
	})

	v.SetDefault("log.json", false)
}
