package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/headsmith/errors"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "data/heads-db-b64.csv", cfg.Generate.Input)
	assert.Equal(t, "data", cfg.Generate.OutputDir)
	assert.Equal(t, "data/generate_config.toml", cfg.Generate.Rules)
	assert.Equal(t, "&7", cfg.Generate.NameColor)
	assert.Equal(t, "mini_blocks_GENERATED.yml", cfg.Generate.MaterialsFile)
	assert.Equal(t, "alphabet_GENERATED", cfg.Generate.AlphabetDir)
	assert.False(t, cfg.Generate.NoAlphabet)
	assert.Len(t, cfg.Count.Outputs, 2)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "headsmith.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[generate]
input = "catalog.csv"
no_alphabet = true
name_color = "&f"

[count]
files = ["heads/a.yml", "heads/b.yml"]
`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "catalog.csv", cfg.Generate.Input)
	assert.True(t, cfg.Generate.NoAlphabet)
	assert.Equal(t, "&f", cfg.Generate.NameColor)
	// Unset keys keep their defaults
	assert.Equal(t, "data", cfg.Generate.OutputDir)
	assert.Equal(t, []string{"heads/a.yml", "heads/b.yml"}, cfg.Count.Files)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestMergeConfigFiles_Precedence(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	project := filepath.Join(dir, "project.toml")
	require.NoError(t, os.WriteFile(user, []byte("[generate]\ninput = \"user.csv\"\noutput_dir = \"user-out\"\n"), 0644))
	require.NoError(t, os.WriteFile(project, []byte("[generate]\ninput = \"project.csv\"\n"), 0644))

	v := viper.New()
	SetDefaults(v)
	mergeConfigFiles(v, []string{filepath.Join(dir, "absent.toml"), user, project})

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "project.csv", cfg.Generate.Input)
	assert.Equal(t, "user-out", cfg.Generate.OutputDir)
}

func TestLoad_EnvOverridesProjectFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName),
		[]byte("[generate]\ninput = \"from-file.csv\"\noutput_dir = \"file-out\"\n"), DefaultFilePermissions))
	t.Setenv("HEADSMITH_GENERATE_INPUT", "from-env.csv")

	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.Generate.Input)
	assert.Equal(t, "file-out", cfg.Generate.OutputDir, "file values still beat defaults")
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, DefaultDirPermissions))

	assert.Equal(t, "", findProjectConfig(nested))

	cfgPath := filepath.Join(root, ProjectConfigName)
	require.NoError(t, os.WriteFile(cfgPath, []byte(""), DefaultFilePermissions))
	assert.Equal(t, cfgPath, findProjectConfig(nested))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		v := viper.New()
		SetDefaults(v)
		cfg, err := LoadWithViper(v)
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "empty colour is valid", mutate: func(c *Config) { c.Generate.NameColor = "" }},
		{name: "empty input", mutate: func(c *Config) { c.Generate.Input = " " }, wantErr: true},
		{name: "empty output dir", mutate: func(c *Config) { c.Generate.OutputDir = "" }, wantErr: true},
		{name: "empty rules", mutate: func(c *Config) { c.Generate.Rules = "" }, wantErr: true},
		{name: "colour without ampersand", mutate: func(c *Config) { c.Generate.NameColor = "7" }, wantErr: true},
		{name: "colour out of range", mutate: func(c *Config) { c.Generate.NameColor = "&z" }, wantErr: true},
		{name: "materials file with path", mutate: func(c *Config) { c.Generate.MaterialsFile = "sub/x.yml" }, wantErr: true},
		{name: "alphabet dir dot-dot", mutate: func(c *Config) { c.Generate.AlphabetDir = ".." }, wantErr: true},
		{name: "empty manifest disables it", mutate: func(c *Config) { c.Generate.ManifestFile = "" }},
		{name: "blank manifest", mutate: func(c *Config) { c.Generate.ManifestFile = " " }, wantErr: true},
		{name: "manifest with path", mutate: func(c *Config) { c.Generate.ManifestFile = "a/m.json" }, wantErr: true},
		{name: "no count outputs", mutate: func(c *Config) { c.Count.Outputs = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_PerCommand(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	cfg.Count.Outputs = nil
	assert.NoError(t, cfg.Generate.Validate(), "generate does not depend on count settings")
	err = cfg.Count.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))

	cfg.Count.Outputs = []string{"head-count.json"}
	cfg.Generate.Input = ""
	assert.NoError(t, cfg.Count.Validate(), "count does not depend on generate settings")
	assert.Error(t, cfg.Validate())
}
