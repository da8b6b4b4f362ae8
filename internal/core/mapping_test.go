package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMappingConfig_JSON(t *testing.T) {
	path := writeFile(t, "mapping.json", `[
		{"csvColumn": 0, "keyName": "name", "dataType": "string"},
		{"csvColumn": 1, "keyName": "age", "dataType": "number"},
		{"csvColumn": 2, "keyName": "active", "dataType": "bool"}
	]`)

	cfg, err := LoadMappingConfig(path)
	require.NoError(t, err)
	assert.Equal(t, peopleConfig, cfg)
}

func TestLoadMappingConfig_UnknownTypeAccepted(t *testing.T) {
	path := writeFile(t, "mapping.json", `[{"csvColumn": 0, "keyName": "when", "dataType": "date"}]`)

	cfg, err := LoadMappingConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg, 1)
	assert.False(t, cfg[0].DataType.Known())
}

func TestLoadMappingConfig_YAML(t *testing.T) {
	path := writeFile(t, "mapping.yml", `
- csvColumn: 0
  keyName: name
  dataType: string
- csvColumn: 1
  keyName: age
  dataType: number
- csvColumn: 2
  keyName: active
  dataType: bool
`)

	cfg, err := LoadMappingConfig(path)
	require.NoError(t, err)
	assert.Equal(t, peopleConfig, cfg)
}

func TestLoadMappingConfig_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "m.json", `[{"csvColumn": 0,`},
		{"object instead of array", "m.json", `{"csvColumn": 0}`},
		{"fractional column", "m.json", `[{"csvColumn": 1.5, "keyName": "a", "dataType": "string"}]`},
		{"null document", "m.json", `null`},
		{"malformed yaml", "m.yaml", "- csvColumn: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := LoadMappingConfig(path)
			require.Error(t, err)

			var cpe *ConfigParseError
			require.True(t, errors.As(err, &cpe), "got %T", err)
			assert.Equal(t, path, cpe.Path)
			assert.Contains(t, err.Error(), "Failed to parse JSON config file '"+path+"'")
		})
	}
}

func TestLoadMappingConfig_Missing(t *testing.T) {
	_, err := LoadMappingConfig(filepath.Join(t.TempDir(), "nope.json"))

	var fae *FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, "JSON config file", fae.Label)
}
