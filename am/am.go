// Package am holds the headsmith tool configuration ("I am").
//
// Configuration is layered with viper: built-in defaults, then system, user
// and project TOML files, then HEADSMITH_* environment variables. Command line
// flags override all of them in the commands package.
package am

// Config represents the headsmith tool configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
	Count    CountConfig    `mapstructure:"count" toml:"count" json:"count" yaml:"count"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// GenerateConfig configures `headsmith generate`
type GenerateConfig struct {
	Input      string `mapstructure:"input" toml:"input" json:"input" yaml:"input"`                   // Catalog CSV path
	OutputDir  string `mapstructure:"output_dir" toml:"output_dir" json:"output_dir" yaml:"output_dir"` // Directory receiving generated files
	Rules      string `mapstructure:"rules" toml:"rules" json:"rules" yaml:"rules"`                   // Rule table TOML path
	NoAlphabet bool   `mapstructure:"no_alphabet" toml:"no_alphabet" json:"no_alphabet" yaml:"no_alphabet"`

	// NameColor is the legacy colour code prefixed to every display name (e.g. "&7")
	NameColor string `mapstructure:"name_color" toml:"name_color" json:"name_color" yaml:"name_color"`

	MaterialsFile string `mapstructure:"materials_file" toml:"materials_file" json:"materials_file" yaml:"materials_file"`
	AlphabetDir   string `mapstructure:"alphabet_dir" toml:"alphabet_dir" json:"alphabet_dir" yaml:"alphabet_dir"`
	ManifestFile  string `mapstructure:"manifest_file" toml:"manifest_file" json:"manifest_file" yaml:"manifest_file"`
}

// CountConfig configures `headsmith count`
type CountConfig struct {
	Root    string   `mapstructure:"root" toml:"root" json:"root" yaml:"root"`             // Directory head files are relative to
	ScanDir string   `mapstructure:"scan_dir" toml:"scan_dir" json:"scan_dir" yaml:"scan_dir"` // Subdirectory of Root scanned for *.yml when Files is empty
	Files   []string `mapstructure:"files" toml:"files" json:"files" yaml:"files"`          // Explicit head files, relative to Root
	Outputs []string `mapstructure:"outputs" toml:"outputs" json:"outputs" yaml:"outputs"`  // JSON summary destinations
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"` // Structured JSON logs instead of console
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
