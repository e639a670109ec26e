package vecgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/version"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

var wantTokenUnit = Unit{
	Name:     "Vector",
	Includes: []string{"tokens.h"},
	Types:    []TypeSpec{{ElementType: "Token", SanitizedName: "Token"}},
}

func TestLoadManifest_TOML(t *testing.T) {
	path := writeManifest(t, "vectors.toml", `
[[units]]
name = "Vector"
includes = ["tokens.h"]
types = [{ type = "Token", name = "Token" }]
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Units, 1)
	assert.Equal(t, wantTokenUnit, m.Units[0])
}

func TestLoadManifest_YAML(t *testing.T) {
	path := writeManifest(t, "vectors.yml", `
units:
  - name: Vector
    includes: [tokens.h]
    types:
      - type: Token
        name: Token
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Units, 1)
	assert.Equal(t, wantTokenUnit, m.Units[0])
}

func TestLoadManifest_Errors(t *testing.T) {
	_, err := LoadManifest(writeManifest(t, "vectors.json", `{}`))
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), ".toml")

	_, err = LoadManifest(writeManifest(t, "broken.toml", "[[units]\n"))
	assert.Error(t, err)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadManifest_Requires(t *testing.T) {
	saved := version.Version
	version.Version = "0.1.0"
	t.Cleanup(func() { version.Version = saved })

	_, err := LoadManifest(writeManifest(t, "ok.toml", `requires = ">= 0.1.0"`))
	assert.NoError(t, err)

	_, err = LoadManifest(writeManifest(t, "new.toml", `requires = ">= 2.0.0"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIncompatibleVersion))
}
