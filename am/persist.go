package am

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/logger"
	"github.com/teranos/cvecgen/vecgen"
)

// backupCount is how many rotated copies (.back1 ... .back3) AddType keeps
const backupCount = 3

// AddType appends an element type to the named unit in the TOML config at
// configPath, creating the file or the unit when missing. The previous file
// is kept as <path>.back1. Comments in the file are not preserved.
func AddType(configPath, unit string, includes []string, t TypeConfig) error {
	spec := vecgen.TypeSpec{ElementType: t.Type, SanitizedName: t.Name}
	if err := spec.Validate(); err != nil {
		return err
	}

	config, err := readRawConfig(configPath)
	if err != nil {
		return err
	}

	units, _ := config["units"].([]interface{})
	target := -1
	for i, raw := range units {
		if u, ok := raw.(map[string]interface{}); ok && u["name"] == unit {
			target = i
			break
		}
	}
	if target < 0 {
		units = append(units, map[string]interface{}{"name": unit})
		target = len(units) - 1
	}

	u := units[target].(map[string]interface{})
	types, _ := u["types"].([]interface{})
	types = append(types, map[string]interface{}{"type": t.Type, "name": t.Name})
	u["types"] = types

	if len(includes) > 0 {
		existing, _ := u["includes"].([]interface{})
		for _, inc := range includes {
			if !containsValue(existing, inc) {
				existing = append(existing, inc)
			}
		}
		u["includes"] = existing
	}
	config["units"] = units

	// Reject the edit if it breaks the unit, e.g. a duplicate name
	if err := validateRawUnit(u); err != nil {
		return err
	}

	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", configPath)
	}

	logger.Infow("Added element type",
		logger.FieldConfig, configPath,
		logger.FieldUnit, unit,
		logger.FieldTypeName, spec.TypeName())
	return nil
}

// readRawConfig parses configPath into a generic map; a missing file is empty
func readRawConfig(configPath string) (map[string]interface{}, error) {
	config := make(map[string]interface{})

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", configPath)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", configPath)
	}
	return config, nil
}

// validateRawUnit round-trips a generic unit table through UnitConfig
func validateRawUnit(raw map[string]interface{}) error {
	data, err := toml.Marshal(raw)
	if err != nil {
		return errors.Wrap(err, "failed to marshal unit")
	}
	var u UnitConfig
	if err := toml.Unmarshal(data, &u); err != nil {
		return errors.Wrap(err, "failed to decode unit")
	}
	return u.toUnit().Validate()
}

func containsValue(values []interface{}, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// createBackup rotates .back1 -> .back2 -> .back3 and copies the current
// file to .back1. Nothing happens if configPath does not exist yet.
func createBackup(configPath string) error {
	content, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	oldest := backupPath(configPath, backupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old backup", logger.FieldPath, oldest, logger.FieldError, err)
	}

	for n := backupCount - 1; n >= 1; n-- {
		from := backupPath(configPath, n)
		if _, err := os.Stat(from); err != nil {
			continue
		}
		if err := os.Rename(from, backupPath(configPath, n+1)); err != nil {
			return errors.Wrapf(err, "failed to rotate %s", from)
		}
	}

	if err := os.WriteFile(backupPath(configPath, 1), content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}

func backupPath(configPath string, n int) string {
	return fmt.Sprintf("%s.back%d", configPath, n)
}
