package config

import (
	"os"
)

type Config struct {
	apiPort        string
	alertDataPath  string
	reliefDataPath string
	debug          bool
}

// Load reads service configuration from the environment, with defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		apiPort:        getenv("API_PORT", "8000"),
		alertDataPath:  getenv("ALERT_DATA_PATH", "data/AlertData.csv"),
		reliefDataPath: getenv("RELIEF_DATA_PATH", "data/ReliefCenters.csv"),
		debug:          getenv("APP_DEBUG", "false") == "true",
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func (c *Config) GetAPIPort() string {
	return ":" + c.apiPort
}

func (c *Config) GetAlertDataPath() string {
	return c.alertDataPath
}

func (c *Config) GetReliefDataPath() string {
	return c.reliefDataPath
}

func (c *Config) Debug() bool {
	return c.debug
}
