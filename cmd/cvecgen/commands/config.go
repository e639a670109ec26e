package commands

import (
	"github.com/teranos/cvecgen/am"
	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/vecgen"
)

// ConfigPath is set by the --config flag; empty means search for cvecgen.toml
var ConfigPath string

// loadConfig loads and validates the configuration
func loadConfig() (*am.Config, error) {
	var (
		cfg *am.Config
		err error
	)
	if ConfigPath != "" {
		cfg, err = am.LoadFromFile(ConfigPath)
	} else {
		cfg, err = am.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// selectedUnits resolves the configured units and narrows them to names
func selectedUnits(cfg *am.Config, names []string) ([]vecgen.Unit, error) {
	units, err := cfg.ResolveUnits()
	if err != nil {
		return nil, err
	}
	return am.SelectUnits(units, names)
}
