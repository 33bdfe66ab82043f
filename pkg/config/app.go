package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backend names accepted in configuration.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// AppConfig represents the application configuration. Values come from
// an optional YAML file and can be overridden by environment variables.
type AppConfig struct {
	Server struct {
		Addr        string `yaml:"addr"`
		Environment string `yaml:"environment"`
	} `yaml:"server"`
	Storage struct {
		Backend string `yaml:"backend"`
	} `yaml:"storage"`
	Contact struct {
		Recipient string `yaml:"recipient"`
	} `yaml:"contact"`
	Downloads struct {
		Dir string `yaml:"dir"`
	} `yaml:"downloads"`
}

// defaults fills in values for fields left empty by file and environment.
func (c *AppConfig) defaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendMemory
	}
	if c.Downloads.Dir == "" {
		c.Downloads.Dir = "downloads"
	}
}

// applyEnv overrides file values with environment variables when set.
func (c *AppConfig) applyEnv() {
	c.Server.Addr = GetEnvString("SERVER_ADDR", c.Server.Addr)
	c.Server.Environment = GetEnvString("ENVIRONMENT", c.Server.Environment)
	c.Storage.Backend = GetEnvString("STORAGE_BACKEND", c.Storage.Backend)
	c.Contact.Recipient = GetEnvString("CONTACT_RECIPIENT", c.Contact.Recipient)
	c.Downloads.Dir = GetEnvString("DOWNLOADS_DIR", c.Downloads.Dir)
}

func (c *AppConfig) validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

// LoadAppConfig loads the application configuration. The path may be
// empty, in which case only defaults and environment variables apply.
// The path parameter is expected to come from a trusted source
// (command-line argument or hardcoded default).
func LoadAppConfig(path string) (*AppConfig, error) {
	var config AppConfig

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.applyEnv()
	config.defaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}
