package am

import (
	"path/filepath"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/vecgen"
)

// ResolveUnits returns the inline units followed by the units of each
// manifest, in configuration order. Relative manifest paths are resolved
// against the config file's directory.
func (c *Config) ResolveUnits() ([]vecgen.Unit, error) {
	units := make([]vecgen.Unit, 0, len(c.Units))
	for _, u := range c.Units {
		units = append(units, u.toUnit())
	}

	for _, path := range c.Generator.Manifests {
		m, err := vecgen.LoadManifest(c.resolvePath(path))
		if err != nil {
			return nil, err
		}
		units = append(units, m.Units...)
	}

	return units, nil
}

// SelectUnits filters units by name, keeping the order of names.
// An empty names list selects every unit.
func SelectUnits(units []vecgen.Unit, names []string) ([]vecgen.Unit, error) {
	if len(names) == 0 {
		return units, nil
	}

	byName := make(map[string]vecgen.Unit, len(units))
	for _, u := range units {
		byName[u.Name] = u
	}

	selected := make([]vecgen.Unit, 0, len(names))
	for _, name := range names {
		u, ok := byName[name]
		if !ok {
			return nil, errors.NewNotFoundError("unit %s is not configured", name)
		}
		selected = append(selected, u)
	}
	return selected, nil
}

// Options returns the generator options
func (c *Config) Options() vecgen.Options {
	return vecgen.Options{
		InitialCapacity: c.Generator.InitialCapacity,
		Parallelism:     c.Generator.Parallelism,
	}
}

// DirWriter returns a writer for the configured layout. A non-empty root
// overrides output.root.
func (c *Config) DirWriter(root string) *vecgen.DirWriter {
	if root == "" {
		root = c.resolvePath(c.Output.Root)
	}
	return &vecgen.DirWriter{
		Root:          root,
		HeaderDir:     c.Output.HeaderDir,
		SourceDir:     c.Output.SourceDir,
		FormatCommand: c.Output.FormatCommand,
	}
}

func (c *Config) resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.source == "" {
		return path
	}
	return filepath.Join(filepath.Dir(c.source), path)
}

func (u UnitConfig) toUnit() vecgen.Unit {
	types := make([]vecgen.TypeSpec, len(u.Types))
	for i, t := range u.Types {
		types[i] = vecgen.TypeSpec{ElementType: t.Type, SanitizedName: t.Name}
	}
	return vecgen.Unit{Name: u.Name, Includes: u.Includes, Types: types}
}
