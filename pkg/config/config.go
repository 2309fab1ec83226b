// Package config loads settings for the HTTP binary from an optional
// YAML file with environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
)

// Config holds the HTTP binary's settings.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen"`
	// BaseURL overrides the Mailmodo API host, mainly for staging setups.
	BaseURL string `yaml:"base_url"`
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:   ":3000",
		BaseURL:  mailmodo.DefaultBaseURL,
		LogLevel: "info",
	}
}

// Load reads the config file at path (skipped when path is empty or the
// file does not exist) and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv("MAILMODO_MCP_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("MAILMODO_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("MAILMODO_MCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
