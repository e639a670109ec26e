package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/cvecgen/errors"
)

// Load reads the configuration from the user config and the nearest project
// cvecgen.toml (searched upward from the working directory). CVECGEN_* env
// vars override both.
func Load() (*Config, error) {
	v := newViper()

	source := ""
	for _, path := range ConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
		source = path
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	cfg.source = source
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()
	if err := mergeFile(v, configPath); err != nil {
		return nil, err
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	cfg.source = configPath
	return cfg, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// ConfigPaths lists the files Load merges, lowest precedence first
func ConfigPaths() []string {
	var paths []string
	if user := userConfigPath(); user != "" {
		paths = append(paths, user)
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	return paths
}

// newViper returns a Viper with defaults and CVECGEN_* env binding
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// mergeFile deep-merges one TOML file into v's config layer: keys it sets
// override earlier files, tables it leaves partial keep earlier keys, and
// CVECGEN_* env vars still win over every file.
func mergeFile(v *viper.Viper, path string) error {
	settings, err := readFile(path)
	if err != nil {
		return err
	}
	if err := v.MergeConfigMap(settings); err != nil {
		return errors.Wrapf(err, "failed to merge config file %s", path)
	}
	return nil
}

// readFile parses one TOML config file into nested settings
func readFile(path string) (map[string]interface{}, error) {
	fileViper := viper.New()
	fileViper.SetConfigFile(path)
	fileViper.SetConfigType("toml")

	if err := fileViper.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return fileViper.AllSettings(), nil
}

// userConfigPath returns ~/.cvecgen/config.toml, or "" without a home dir
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigName)
}

// findProjectConfig walks up from the working directory looking for
// cvecgen.toml. Returns "" if none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
