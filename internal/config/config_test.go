package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 2, cfg.Precision())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: DEBUG\nlog_format: json\nlog_file: out.log\ndecimal_places: 3\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "out.log", cfg.LogFile)
	assert.Equal(t, 3, cfg.Precision())
}

func TestLoad_ExplicitZeroDecimalPlaces(t *testing.T) {
	cfg, err := Parse([]byte("decimal_places: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Precision())
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"bad yaml", "log_level: [", "failed to parse config file"},
		{"bad level", "log_level: loud", "unknown log_level"},
		{"bad format", "log_format: xml", "unknown log_format"},
		{"negative places", "decimal_places: -1", "decimal_places must be between"},
		{"too many places", "decimal_places: 11", "decimal_places must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestMarshal_RoundTripsEffectiveConfig(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "warn", raw["log_level"])
	assert.Equal(t, "text", raw["log_format"])
	assert.Equal(t, 2, raw["decimal_places"])
	assert.NotContains(t, raw, "log_file")
}
