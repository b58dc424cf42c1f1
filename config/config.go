package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/GoldenRodger5/nutrivize-sub004/logger"
)

// Config holds file-based configuration. Values from the environment
// (see GetEnv) take precedence over the YAML file.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// ReadConfig reads the configuration from the YAML file at filePath.
// A missing file is not an error; callers fall back to env defaults.
func ReadConfig(filePath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		logger.Error("unable to read config file", "path", filePath, "error", err)
		return nil, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("unable to unmarshal config YAML", "path", filePath, "error", err)
		return nil, err
	}

	return &cfg, nil
}

// Apply exports non-empty file values into the process environment so the
// rest of the app only reads config through GetEnv.
func (c *Config) Apply() {
	setIfEmpty("PORT", c.Server.Port)
	setIfEmpty("DB_HOST", c.Database.Host)
	setIfEmpty("DB_USER", c.Database.User)
	setIfEmpty("DB_PASSWORD", c.Database.Password)
	setIfEmpty("DB_NAME", c.Database.DBName)
	setIfEmpty("DB_PORT", c.Database.Port)
	setIfEmpty("DB_SSLMODE", c.Database.SSLMode)
	setIfEmpty("JWT_SECRET", c.JWT.Secret)
}

func setIfEmpty(key, val string) {
	if val != "" && os.Getenv(key) == "" {
		os.Setenv(key, val)
	}
}

// GetEnv returns the environment variable value or fallback when unset.
func GetEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
