// Package am loads the cvecgen configuration ("I am"): output directories,
// generator settings and the output units to generate.
package am

// Config represents the cvecgen configuration
type Config struct {
	Output    OutputConfig    `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
	Generator GeneratorConfig `mapstructure:"generator" json:"generator" yaml:"generator" toml:"generator"`
	Units     []UnitConfig    `mapstructure:"units" json:"units" yaml:"units" toml:"units"`

	// path of the file the config was read from, empty for defaults only
	source string
}

// OutputConfig configures where generated files go
type OutputConfig struct {
	Root          string `mapstructure:"root" json:"root" yaml:"root" toml:"root"`                                     // Base directory for header_dir and source_dir
	HeaderDir     string `mapstructure:"header_dir" json:"header_dir" yaml:"header_dir" toml:"header_dir"`             // default: include
	SourceDir     string `mapstructure:"source_dir" json:"source_dir" yaml:"source_dir" toml:"source_dir"`             // default: src
	FormatCommand string `mapstructure:"format_command" json:"format_command" yaml:"format_command" toml:"format_command"` // e.g. "clang-format -i" (empty = none)
}

// GeneratorConfig tunes rendering
type GeneratorConfig struct {
	InitialCapacity int      `mapstructure:"initial_capacity" json:"initial_capacity" yaml:"initial_capacity" toml:"initial_capacity"` // INITIAL_CAP (default: 10)
	Parallelism     int      `mapstructure:"parallelism" json:"parallelism" yaml:"parallelism" toml:"parallelism"`                 // Units generated at once (0 = unbounded)
	Requires        string   `mapstructure:"requires" json:"requires" yaml:"requires" toml:"requires"`                             // Semver constraint on cvecgen
	Manifests       []string `mapstructure:"manifests" json:"manifests" yaml:"manifests" toml:"manifests"`                         // Extra unit manifests (.toml/.yaml)
}

// UnitConfig is one output unit
type UnitConfig struct {
	Name     string       `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	Includes []string     `mapstructure:"includes" json:"includes,omitempty" yaml:"includes,omitempty" toml:"includes,omitempty"`
	Types    []TypeConfig `mapstructure:"types" json:"types" yaml:"types" toml:"types"`
}

// TypeConfig is one element type within a unit
type TypeConfig struct {
	Type string `mapstructure:"type" json:"type" yaml:"type" toml:"type"`
	Name string `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
}

// Source returns the config file path, or "" when only defaults were used
func (c *Config) Source() string {
	return c.source
}

// Config file names searched for, most specific first
const (
	ProjectConfigName = "cvecgen.toml"
	UserConfigDir     = ".cvecgen"
	UserConfigName    = "config.toml"
	EnvPrefix         = "CVECGEN"
)
