package am

import (
	"regexp"
	"strings"

	"github.com/teranos/headsmith/errors"
)

// Legacy formatting codes: &0-&9, &a-&f colours and &k-&o, &r formats
var nameColorPattern = regexp.MustCompile(`^&[0-9a-fk-or]$`)

// Validate checks that the whole configuration is valid
func (c *Config) Validate() error {
	if err := c.Generate.Validate(); err != nil {
		return err
	}
	return c.Count.Validate()
}

// Validate checks the settings `headsmith generate` depends on
func (g GenerateConfig) Validate() error {
	if strings.TrimSpace(g.Input) == "" {
		return errors.NewInvalidConfigError("generate.input cannot be empty")
	}
	if strings.TrimSpace(g.OutputDir) == "" {
		return errors.NewInvalidConfigError("generate.output_dir cannot be empty")
	}
	if strings.TrimSpace(g.Rules) == "" {
		return errors.NewInvalidConfigError("generate.rules cannot be empty")
	}

	// Empty colour means "no prefix"
	if g.NameColor != "" && !nameColorPattern.MatchString(g.NameColor) {
		return errors.NewInvalidConfigError("generate.name_color must be & followed by one format code, got %q", g.NameColor)
	}

	for key, name := range map[string]string{
		"generate.materials_file": g.MaterialsFile,
		"generate.alphabet_dir":   g.AlphabetDir,
	} {
		if err := validateFileName(key, name); err != nil {
			return err
		}
	}

	// Empty manifest_file skips the manifest
	if g.ManifestFile != "" {
		if err := validateFileName("generate.manifest_file", g.ManifestFile); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks the settings `headsmith count` depends on
func (c CountConfig) Validate() error {
	if len(c.Outputs) == 0 {
		return errors.NewInvalidConfigError("count.outputs must list at least one file")
	}
	return nil
}

// validateFileName requires a bare name: generated files always live in output_dir
func validateFileName(key, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidConfigError("%s cannot be empty", key)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.NewInvalidConfigError("%s must be a file name, not a path: %q", key, name)
	}
	return nil
}
