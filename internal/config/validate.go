package config

import (
	"fmt"

	"github.com/Kavirubc/openai-completions/internal/completion"
	"github.com/Kavirubc/openai-completions/pkg/models"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(cfg *Config) []error {
	var errs []error

	if cfg.APIKey == "" {
		errs = append(errs, ValidationError{"api_key", "required (set api_key or OPENAI_API_KEY)"})
	}

	if _, err := models.ResolveModel(cfg.Model); err != nil {
		errs = append(errs, ValidationError{"model", fmt.Sprintf("unknown model %q", cfg.Model)})
	}

	if _, err := completion.ResolveTemperature(cfg.Temperature); err != nil {
		errs = append(errs, ValidationError{"temperature", err.Error()})
	}

	if _, ok := completion.ParseLevel(cfg.LogLevel); !ok {
		errs = append(errs, ValidationError{"log_level", "must be one of off, error, warn, info, debug"})
	}

	return errs
}

// ResolvedModel returns the canonical model name the config selects
func (cfg *Config) ResolvedModel() string {
	if name, err := models.ResolveModel(cfg.Model); err == nil {
		return name
	}
	return ""
}
