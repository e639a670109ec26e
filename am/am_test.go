package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/vecgen"
)

const tokenConfig = `
[output]
header_dir = "include"
source_dir = "src"

[generator]
parallelism = 2

[[units]]
name = "Vector"
includes = ["tokens.h"]
types = [
  { type = "Token", name = "Token" },
  { type = "char *", name = "Str" },
]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "include", cfg.Output.HeaderDir)
	assert.Equal(t, "src", cfg.Output.SourceDir)
	assert.Equal(t, vecgen.DefaultInitialCapacity, cfg.Generator.InitialCapacity)
	assert.Equal(t, 4, cfg.Generator.Parallelism)
	assert.Empty(t, cfg.Units)
	assert.Empty(t, cfg.Source())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ProjectConfigName, tokenConfig)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source())
	assert.Equal(t, 2, cfg.Generator.Parallelism)
	assert.Equal(t, vecgen.DefaultInitialCapacity, cfg.Generator.InitialCapacity, "unset keys keep defaults")
	require.Len(t, cfg.Units, 1)
	assert.Equal(t, "Vector", cfg.Units[0].Name)
	assert.Equal(t, []string{"tokens.h"}, cfg.Units[0].Includes)
	assert.Equal(t, []TypeConfig{{Type: "Token", Name: "Token"}, {Type: "char *", Name: "Str"}}, cfg.Units[0].Types)

	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, 2, opts.Parallelism)
	assert.Equal(t, 10, opts.InitialCapacity)
}

func TestLoadFromFile_EnvFillsUnsetKeys(t *testing.T) {
	t.Setenv("CVECGEN_GENERATOR_INITIAL_CAPACITY", "16")

	path := writeFile(t, t.TempDir(), ProjectConfigName, tokenConfig)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Generator.InitialCapacity)
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("CVECGEN_GENERATOR_INITIAL_CAPACITY", "20")

	path := writeFile(t, t.TempDir(), ProjectConfigName, "[generator]\ninitial_capacity = 5\n")
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Generator.InitialCapacity)
}

// userAndProject points HOME at a user config and the working directory at
// a project config, returning the project directory.
func userAndProject(t *testing.T, user, project string) string {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, UserConfigDir), 0755))
	writeFile(t, filepath.Join(home, UserConfigDir), UserConfigName, user)
	t.Setenv("HOME", home)

	dir := t.TempDir()
	writeFile(t, dir, ProjectConfigName, project)
	t.Chdir(dir)
	return dir
}

func TestLoad_MergesTablesAcrossFiles(t *testing.T) {
	userAndProject(t,
		"[output]\nformat_command = \"clang-format -i\"\n\n[generator]\nparallelism = 3\n",
		"[output]\nroot = \"out\"\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Output.Root)
	assert.Equal(t, "clang-format -i", cfg.Output.FormatCommand, "user key kept when project sets the same table")
	assert.Equal(t, 3, cfg.Generator.Parallelism)
	assert.Equal(t, "include", cfg.Output.HeaderDir)
	assert.Equal(t, ProjectConfigName, filepath.Base(cfg.Source()))
}

func TestLoad_ProjectOverridesUser(t *testing.T) {
	userAndProject(t,
		"[output]\nheader_dir = \"inc\"\nsource_dir = \"lib\"\n",
		"[output]\nheader_dir = \"headers\"\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "headers", cfg.Output.HeaderDir)
	assert.Equal(t, "lib", cfg.Output.SourceDir)

	t.Setenv("CVECGEN_OUTPUT_HEADER_DIR", "env_inc")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "env_inc", cfg.Output.HeaderDir)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDirWriter_ResolvesAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ProjectConfigName, tokenConfig)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	w := cfg.DirWriter("")
	header, source := w.Paths("Vector")
	assert.Equal(t, filepath.Join(dir, "include", "Vector.h"), header)
	assert.Equal(t, filepath.Join(dir, "src", "Vector.c"), source)

	// Explicit root wins
	w = cfg.DirWriter("/tmp/out")
	header, _ = w.Paths("Vector")
	assert.Equal(t, filepath.Join("/tmp/out", "include", "Vector.h"), header)
}

func validConfig() Config {
	return Config{
		Output:    OutputConfig{HeaderDir: "include", SourceDir: "src"},
		Generator: GeneratorConfig{InitialCapacity: 10},
		Units: []UnitConfig{{
			Name:  "Vector",
			Types: []TypeConfig{{Type: "int", Name: "Int"}},
		}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		check   func(error) bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no units is valid", mutate: func(c *Config) { c.Units = nil }},
		{name: "empty header dir", mutate: func(c *Config) { c.Output.HeaderDir = "" }, wantErr: true},
		{name: "same dirs", mutate: func(c *Config) { c.Output.SourceDir = "include/" }, wantErr: true},
		{name: "zero capacity", mutate: func(c *Config) { c.Generator.InitialCapacity = 0 }, wantErr: true},
		{name: "negative parallelism", mutate: func(c *Config) { c.Generator.Parallelism = -1 }, wantErr: true},
		{name: "zero parallelism is unbounded", mutate: func(c *Config) { c.Generator.Parallelism = 0 }},
		{
			name:    "bad sanitized name",
			mutate:  func(c *Config) { c.Units[0].Types[0].Name = "unsigned int" },
			wantErr: true,
			check:   errors.IsInvalidSpecError,
		},
		{
			name: "duplicate sanitized name",
			mutate: func(c *Config) {
				c.Units[0].Types = append(c.Units[0].Types, TypeConfig{Type: "long", Name: "Int"})
			},
			wantErr: true,
			check:   errors.IsDuplicateNameError,
		},
		{
			name:    "duplicate unit",
			mutate:  func(c *Config) { c.Units = append(c.Units, c.Units[0]) },
			wantErr: true,
			check:   errors.IsDuplicateNameError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.check != nil {
				assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			}
		})
	}
}

func TestResolveUnits_Manifests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ast.toml", `
[[units]]
name = "AstVectors"
includes = ["ast.h"]
types = [{ type = "Node *", name = "NodePtr" }]
`)
	writeFile(t, dir, "num.yaml", `
units:
  - name: NumVectors
    types:
      - type: double
        name: Double
      - type: unsigned int
        name: Uint
`)
	path := writeFile(t, dir, ProjectConfigName, `
[generator]
manifests = ["ast.toml", "num.yaml"]

[[units]]
name = "Vector"
types = [{ type = "Token", name = "Token" }]
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	units, err := cfg.ResolveUnits()
	require.NoError(t, err)
	require.Len(t, units, 3)

	assert.Equal(t, "Vector", units[0].Name)
	assert.Equal(t, "AstVectors", units[1].Name)
	assert.Equal(t, []vecgen.TypeSpec{{ElementType: "Node *", SanitizedName: "NodePtr"}}, units[1].Types)
	assert.Equal(t, "NumVectors", units[2].Name)
	assert.Equal(t, "unsigned int", units[2].Types[1].ElementType)

	require.NoError(t, cfg.Validate())
}

func TestSelectUnits(t *testing.T) {
	units := []vecgen.Unit{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	all, err := SelectUnits(units, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	picked, err := SelectUnits(units, []string{"C", "A"})
	require.NoError(t, err)
	assert.Equal(t, []vecgen.Unit{{Name: "C"}, {Name: "A"}}, picked)

	_, err = SelectUnits(units, []string{"D"})
	assert.True(t, errors.IsNotFoundError(err))
}
