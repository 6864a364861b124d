package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Kavirubc/openai-completions/internal/completion"
)

// Config represents the full application configuration
type Config struct {
	APIKey      string `yaml:"api_key"`
	Model       string `yaml:"model"`
	Temperature string `yaml:"temperature"`
	Role        string `yaml:"role"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads and parses config from the given path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// LoadOrDefault loads the config at path, or returns the defaults when path is empty
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg, nil
	}
	return Load(path)
}

// FindConfigPath looks for config in common locations
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	paths := []string{
		"openai-completions.yaml",
		"openai-completions.yml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, ".config", "openai-completions", "config.yaml")
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}

	return ""
}

// Values flattens the config into the key/value pairs read by a completion host.
// Unset fields are omitted so the completion defaults apply.
func (cfg *Config) Values() map[string]string {
	values := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			values[key] = value
		}
	}

	set(completion.KeyAPIKey, cfg.APIKey)
	set(completion.KeyModel, cfg.Model)
	set(completion.KeyTemperature, cfg.Temperature)
	set(completion.KeyRole, cfg.Role)

	return values
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "off"
	}
	// Model and temperature stay empty: the catalog default and 0.7 are applied at completion time
}
