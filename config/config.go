package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the MySQL connection parameters for the bootstrap.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string
	DBName     string
}

// ConfigError reports a malformed environment value.
type ConfigError struct {
	Key   string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid value %q for %s", e.Value, e.Key)
}

// Load reads connection parameters from the environment, falling back to
// development defaults. The only rejected input is a non-numeric DB_PORT.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "shopee_affiliate"),
	}

	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return nil, &ConfigError{Key: "DB_PORT", Value: cfg.DBPort}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
