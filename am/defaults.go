package am

import (
	"github.com/spf13/viper"

	"github.com/teranos/cvecgen/vecgen"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Output layout: include/ + src/
	v.SetDefault("output.root", ".")
	v.SetDefault("output.header_dir", vecgen.DefaultHeaderDir)
	v.SetDefault("output.source_dir", vecgen.DefaultSourceDir)
	v.SetDefault("output.format_command", "")

	// Generator defaults
	v.SetDefault("generator.initial_capacity", vecgen.DefaultInitialCapacity)
	v.SetDefault("generator.parallelism", 4)
	v.SetDefault("generator.requires", "")
	v.SetDefault("generator.manifests", []string{})
}
