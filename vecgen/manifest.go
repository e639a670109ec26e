package vecgen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/version"
)

// Manifest is a standalone list of units, kept next to the code that uses
// the generated containers. TOML and YAML are accepted:
//
//	requires = ">= 0.1.0"
//
//	[[units]]
//	name = "Vector"
//	includes = ["tokens.h"]
//	types = [{ type = "Token", name = "Token" }]
type Manifest struct {
	// Requires is an optional semver constraint on the generator version
	Requires string `toml:"requires" yaml:"requires"`
	Units    []Unit `toml:"units" yaml:"units"`
}

// LoadManifest reads a manifest, choosing the decoder by file extension,
// and checks its version constraint. Units are not validated here.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &m); err != nil {
			return nil, errors.Wrapf(err, "failed to parse manifest %s", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read manifest %s", path)
		}
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrapf(err, "failed to parse manifest %s", path)
		}
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported manifest format %q for %s", ext, path),
			"use a .toml, .yaml or .yml file")
	}

	if err := version.Satisfies(m.Requires); err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}

	return &m, nil
}
