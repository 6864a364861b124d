package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if env var not set
	})
}

// expandConfigEnvVars expands environment variables in config string fields
func expandConfigEnvVars(cfg *Config) {
	cfg.APIKey = expandEnvVars(cfg.APIKey)
	cfg.Model = expandEnvVars(cfg.Model)
	cfg.Temperature = expandEnvVars(cfg.Temperature)
	cfg.Role = expandEnvVars(cfg.Role)

	// An unresolved reference means the key is not configured
	if envVarPattern.MatchString(cfg.APIKey) {
		cfg.APIKey = ""
	}
}
