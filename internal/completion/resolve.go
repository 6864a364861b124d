package completion

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Kavirubc/openai-completions/pkg/models"
)

// DefaultTemperature is used when no temperature is configured
const DefaultTemperature = 0.7

// Config is a fully validated set of completion parameters
type Config struct {
	Model       string
	Temperature float64
	Role        string
	APIKey      string
}

// ResolveTemperature parses a temperature value. An empty input selects DefaultTemperature.
func ResolveTemperature(input string) (float64, error) {
	if input == "" {
		return DefaultTemperature, nil
	}

	t, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTemperature, input)
	}
	if math.IsNaN(t) || t < 0.0 || t > 1.0 {
		return 0, fmt.Errorf("%w: %v", ErrTemperatureOutOfRange, t)
	}

	return t, nil
}

// ResolveRole returns the system message content. An empty role is valid.
func ResolveRole(input string) string {
	return input
}

// LoadConfig reads and validates the completion parameters from the host
func LoadConfig(host Host) (Config, error) {
	apiKey, _ := host.Config(KeyAPIKey)
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	rawModel, ok := host.Config(KeyModel)
	if !ok || rawModel == "" {
		host.Log(LevelInfo, "Model not set, using default value")
	}
	model, err := models.ResolveModel(rawModel)
	if err != nil {
		return Config{}, err
	}
	host.Log(LevelInfo, fmt.Sprintf("Model: %s", model))

	rawTemperature, ok := host.Config(KeyTemperature)
	if !ok || rawTemperature == "" {
		host.Log(LevelInfo, "Temperature not set, using default value")
	}
	temperature, err := ResolveTemperature(rawTemperature)
	if err != nil {
		return Config{}, err
	}
	host.Log(LevelInfo, fmt.Sprintf("Temperature: %v", temperature))

	rawRole, _ := host.Config(KeyRole)
	role := ResolveRole(rawRole)
	if role == "" {
		host.Log(LevelInfo, "Role not set")
	}

	return Config{
		Model:       model,
		Temperature: temperature,
		Role:        role,
		APIKey:      apiKey,
	}, nil
}
