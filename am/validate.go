package am

import (
	"path/filepath"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/vecgen"
	"github.com/teranos/cvecgen/version"
)

// Validate checks that the configuration is valid, including every unit it
// resolves to (inline and from manifests).
func (c *Config) Validate() error {
	if c.Output.HeaderDir == "" {
		return errors.New("output.header_dir cannot be empty")
	}
	if c.Output.SourceDir == "" {
		return errors.New("output.source_dir cannot be empty")
	}
	if filepath.Clean(c.Output.HeaderDir) == filepath.Clean(c.Output.SourceDir) {
		return errors.WithHint(
			errors.Newf("output.header_dir and output.source_dir are both %q", c.Output.HeaderDir),
			"headers and sources go to separate directories, e.g. include and src")
	}

	// Zero would make the first add grow immediately; negative wraps in size_t
	if c.Generator.InitialCapacity < 1 {
		return errors.Newf("generator.initial_capacity must be >= 1, got %d", c.Generator.InitialCapacity)
	}
	if c.Generator.Parallelism < 0 {
		return errors.Newf("generator.parallelism must be >= 0, got %d", c.Generator.Parallelism)
	}

	if err := version.Satisfies(c.Generator.Requires); err != nil {
		return err
	}

	units, err := c.ResolveUnits()
	if err != nil {
		return err
	}
	return vecgen.ValidateUnits(units)
}
