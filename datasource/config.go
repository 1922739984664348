package datasource

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration.
type Config struct {
	OpenWeatherMap struct {
		APIKey string `json:"apiKey"`
	} `json:"openWeatherMap"`

	// DefaultCity is the search fallback when no device location is
	// available.
	DefaultCity string `json:"defaultCity"`

	// CacheMinutes is the raw-payload cache TTL; 0 disables caching.
	CacheMinutes int `json:"cacheMinutes"`
}

// LoadConfig loads configuration from a JSON file. The OPENWEATHER_API_KEY
// environment variable, when set, overrides the file's key so the key can
// live in .env instead of the config.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	if key := os.Getenv("OPENWEATHER_API_KEY"); key != "" {
		config.OpenWeatherMap.APIKey = key
	}
	return &config, nil
}

// DefaultConfig creates a default configuration.
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.APIKey = os.Getenv("OPENWEATHER_API_KEY")
	config.DefaultCity = "Klaten"
	config.CacheMinutes = 10
	return config
}
