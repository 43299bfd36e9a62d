package config

import (
	"os"
)

// Config holds runtime settings sourced from the environment. Flags take
// precedence over these values; the environment only supplies defaults.
type Config struct {
	OutputPath string
	LogLevel   string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		OutputPath: getEnv("CONCERTS_OUTPUT", "events.json"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
