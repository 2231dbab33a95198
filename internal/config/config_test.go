package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, ".extracted.csv", config.OutputSuffix)
	assert.Contains(t, config.Institutions, "chase")
	assert.Contains(t, config.Institutions, "amex")
	assert.Contains(t, config.Institutions, "citi")
	assert.Equal(t, "American Express", config.Institutions["amex"].DisplayName)
}

func TestLoad(t *testing.T) {
	configContent := `
output_suffix = ".test.csv"

[institutions]
  [institutions.test_bank]
  display_name = "Test Bank"
`

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, ".test.csv", config.OutputSuffix)

	// File entries are merged on top of the built-in table
	assert.Contains(t, config.Institutions, "test_bank")
	assert.Equal(t, "Test Bank", config.Institutions["test_bank"].DisplayName)
	assert.Contains(t, config.Institutions, "chase")
	assert.Contains(t, config.Institutions, "amex")
}

func TestLoad_OverridesDisplayName(t *testing.T) {
	configContent := `
[institutions]
  [institutions.chase]
  display_name = "JPMorgan Chase"
`

	configPath := filepath.Join(t.TempDir(), "override.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	config, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "JPMorgan Chase", config.Institutions["chase"].DisplayName)
	assert.Equal(t, ".extracted.csv", config.OutputSuffix)
}

func TestLoad_InvalidFile(t *testing.T) {
	config, err := Load("nonexistent.toml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInstitutionNames(t *testing.T) {
	names := Default().InstitutionNames()
	assert.Equal(t, []string{"amex", "chase", "citi"}, names)
}
