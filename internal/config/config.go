package config

import (
	"os"

	"prosignal/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Warehouse WarehouseConfig
	Data      DataConfig
}

// DatabaseConfig holds the report archive connection settings. Optional:
// when URL is empty the archive is disabled and reports stay in memory.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web surface settings
type ServerConfig struct {
	Port    string // dashboard UI
	APIPort string // JSON API
	GinMode string
}

// WarehouseConfig holds the opaque identifier pair handed to the tier-4
// query-generation collaborator
type WarehouseConfig struct {
	ProjectID string
	DatasetID string
}

// DataConfig holds signal input settings
type DataConfig struct {
	WorkbookFile string // xlsx/csv of signal rows for the CLI pipeline
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Warehouse: WarehouseConfig{
			ProjectID: getEnvOrDefault("WAREHOUSE_PROJECT_ID", ""),
			DatasetID: getEnvOrDefault("WAREHOUSE_DATASET_ID", ""),
		},
		Data: DataConfig{
			WorkbookFile: getEnvOrDefault("SIGNAL_WORKBOOK", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	// The warehouse identifiers travel as a pair.
	if (config.Warehouse.ProjectID == "") != (config.Warehouse.DatasetID == "") {
		return errors.ConfigInvalid("WAREHOUSE_PROJECT_ID and WAREHOUSE_DATASET_ID must be set together")
	}
	if config.Server.Port == config.Server.APIPort {
		return errors.ConfigInvalid("PORT and API_PORT must differ")
	}
	return nil
}

// ArchiveEnabled reports whether a report archive database is configured
func (c *Config) ArchiveEnabled() bool {
	return c.Database.URL != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
