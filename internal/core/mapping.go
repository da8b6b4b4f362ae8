package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadMappingConfig reads and decodes the mapping file at path.
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
// Both must hold a list of {csvColumn, keyName, dataType} objects. Data
// types are not checked here; an unknown one fails when the first row is
// mapped.
func LoadMappingConfig(path string) (MappingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Label: "JSON config file", Path: path, Err: err}
	}

	cfg, err := ParseMappingConfig(data, isYAMLPath(path))
	if err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// ParseMappingConfig decodes a mapping document.
func ParseMappingConfig(data []byte, asYAML bool) (MappingConfig, error) {
	var cfg MappingConfig

	if asYAML {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg == nil {
		// "null" decodes without error but is not a list of rules.
		return nil, fmt.Errorf("expected an array of mapping rules")
	}
	return cfg, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
