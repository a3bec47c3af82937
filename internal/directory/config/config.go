// Package config loads the service configuration from a YAML file.
// Use real config tooling (e.g. Viper) if the settings surface grows.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the directory service and its tools.
type Config struct {
	HTTPPort     int      `yaml:"HTTP_PORT"`
	DBHost       string   `yaml:"DB_HOST"`
	DBPort       int      `yaml:"DB_PORT"`
	DBUser       string   `yaml:"DB_USER"`
	DBPassword   string   `yaml:"DB_PASSWORD"`
	DBName       string   `yaml:"DB_NAME"`
	DBSSLMode    string   `yaml:"DB_SSLMODE"`
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	Topic        string   `yaml:"TOPIC"`
	JWTSecret    string   `yaml:"JWT_SECRET"`
	TokenTTL     int      `yaml:"TOKEN_TTL_HOURS"`
	CORSOrigins  []string `yaml:"CORS_ORIGINS"`

	// Asset storage: "disk" serves files from UploadsDir under
	// UploadsBaseURL; "cdn" talks to the media CDN API.
	StorageDriver  string `yaml:"STORAGE_DRIVER"`
	UploadsDir     string `yaml:"UPLOADS_DIR"`
	UploadsBaseURL string `yaml:"UPLOADS_BASE_URL"`
	CDNBaseURL     string `yaml:"CDN_BASE_URL"`
	CDNAPIKey      string `yaml:"CDN_API_KEY"`
}

// Load reads the YAML config. JWT_SECRET and CDN_API_KEY may be
// overridden from the environment so secrets stay out of the file.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("CDN_API_KEY"); v != "" {
		cfg.CDNAPIKey = v
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24
	}
	return &cfg, nil
}
