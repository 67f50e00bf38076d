package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	// Auth holds the operator account. The registry is a single-admin tool;
	// the defaults match the legacy deployment and should be overridden in
	// production.
	Auth struct {
		AdminUsername string `yaml:"admin_username" env:"AUTH_ADMIN_USERNAME"`
		AdminPassword string `yaml:"admin_password" env:"AUTH_ADMIN_PASSWORD"`
	} `yaml:"auth"`

	// Import configures workbook ingestion. SheetWhitelist limits which
	// worksheets are processed; an empty list processes every sheet.
	Import struct {
		SheetWhitelist  []string `yaml:"sheet_whitelist" env:"IMPORT_SHEET_WHITELIST"`
		MaxUploadSizeMB int      `yaml:"max_upload_size_mb" env:"IMPORT_MAX_UPLOAD_SIZE_MB"`
	} `yaml:"import"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; defaults plus environment cover dev runs
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.JWT.AccessTokenExpiration = "8h"
	config.JWT.Issuer = "laixe-registry"

	config.Auth.AdminUsername = "admin"
	config.Auth.AdminPassword = "admin"

	// Worksheet names of the legacy registry workbooks
	config.Import.SheetWhitelist = []string{"DS CŨ", "BHXH BB+HT", "KO KÝ HĐ"}
	config.Import.MaxUploadSizeMB = 10

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if config.Auth.AdminUsername == "" || config.Auth.AdminPassword == "" {
		return fmt.Errorf("admin credentials are required")
	}

	if config.Import.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
