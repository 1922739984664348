package datasource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := writeConfigFile(t, `{
		"openWeatherMap": {"apiKey": "file-key"},
		"defaultCity": "Klaten",
		"cacheMinutes": 10
	}`)

	t.Setenv("OPENWEATHER_API_KEY", "")
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal("file-key", config.OpenWeatherMap.APIKey)
	assert.Equal("Klaten", config.DefaultCity)
	assert.Equal(10, config.CacheMinutes)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	assert := assert.New(t)

	path := writeConfigFile(t, `{"openWeatherMap": {"apiKey": "file-key"}}`)

	t.Setenv("OPENWEATHER_API_KEY", "env-key")
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal("env-key", config.OpenWeatherMap.APIKey)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("OPENWEATHER_API_KEY", "env-key")
	config := DefaultConfig()
	assert.Equal("env-key", config.OpenWeatherMap.APIKey)
	assert.Equal("Klaten", config.DefaultCity)
	assert.Equal(10, config.CacheMinutes)
}
