package am

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/cvecgen/errors"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceUser        ConfigSource = "user"        // ~/.cvecgen/config.toml
	SourceProject     ConfigSource = "project"     // nearest cvecgen.toml, or --config
	SourceEnvironment ConfigSource = "environment" // CVECGEN_* env vars
)

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key"`
	Value      interface{}  `json:"value"`
	Source     ConfigSource `json:"source"`
	SourcePath string       `json:"source_path,omitempty"` // File path or env var name
}

// ConfigIntrospection lists every effective setting with its origin
type ConfigIntrospection struct {
	Files    []string      `json:"files"` // Files that existed and were merged
	Settings []SettingInfo `json:"settings"`
}

// Introspect merges paths the way Load does, lowest precedence first, and
// records which file (or env var) each setting came from.
func Introspect(paths []string) (*ConfigIntrospection, error) {
	v := newViper()
	sources := make(map[string]sourceInfo)
	intro := &ConfigIntrospection{}

	userPath := userConfigPath()
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		settings, err := readFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config for introspection")
		}

		source := SourceProject
		if filepath.Clean(path) == userPath {
			source = SourceUser
		}
		for _, key := range flattenKeys(settings, "") {
			sources[key] = sourceInfo{Source: source, Path: path}
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return nil, errors.Wrapf(err, "failed to merge config file %s", path)
		}
		intro.Files = append(intro.Files, path)
	}

	flattenSettingsWithSources(v.AllSettings(), "", intro, sources)
	return intro, nil
}

// sourceInfo tracks where a configuration value originated
type sourceInfo struct {
	Source ConfigSource
	Path   string
}

// flattenKeys returns the dotted leaf keys of settings
func flattenKeys(settings map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range settings {
		fullKey := joinKey(prefix, key)
		if nested, ok := value.(map[string]interface{}); ok {
			keys = append(keys, flattenKeys(nested, fullKey)...)
			continue
		}
		keys = append(keys, fullKey)
	}
	return keys
}

// flattenSettingsWithSources flattens settings and assigns sources from sourceMap
func flattenSettingsWithSources(settings map[string]interface{}, prefix string, intro *ConfigIntrospection, sourceMap map[string]sourceInfo) {
	// Sort keys for deterministic iteration
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := joinKey(prefix, key)

		if nested, ok := value.(map[string]interface{}); ok {
			flattenSettingsWithSources(nested, fullKey, intro, sourceMap)
			continue
		}

		info := sourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := sourceMap[fullKey]; ok {
			info = si
		}

		// Environment variables override every file
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(fullKey, ".", "_"))
		if _, ok := os.LookupEnv(envKey); ok {
			info = sourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		intro.Settings = append(intro.Settings, SettingInfo{
			Key:        fullKey,
			Value:      value,
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
