package models

import (
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ErrInvalidModel is returned when a model name matches no catalog entry
var ErrInvalidModel = errors.New("invalid model")

// ModelDescriptor describes a supported chat model and its shorthand aliases
type ModelDescriptor struct {
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases"`
	MaxInputChars int      `json:"max_input_chars"`
}

// HasName reports whether s is the canonical name or one of the aliases
func (m ModelDescriptor) HasName(s string) bool {
	if s == m.Name {
		return true
	}
	for _, alias := range m.Aliases {
		if s == alias {
			return true
		}
	}
	return false
}

// catalog order matters: the first entry is the default model
var catalog = []ModelDescriptor{
	{Name: openai.GPT4o, Aliases: []string{"4o"}, MaxInputChars: 128000},
	{Name: openai.GPT4, Aliases: []string{"4"}, MaxInputChars: 24500},
	{Name: openai.GPT4Turbo1106, Aliases: []string{"128k"}, MaxInputChars: 392000},
	{Name: openai.GPT432K, Aliases: []string{"32k"}, MaxInputChars: 98000},
	{Name: openai.GPT3Dot5Turbo, Aliases: []string{"35t"}, MaxInputChars: 12250},
	{Name: openai.GPT3Dot5Turbo1106, Aliases: []string{"35t-1106"}, MaxInputChars: 12250},
	{Name: openai.GPT3Dot5Turbo16K, Aliases: []string{"35t16k"}, MaxInputChars: 44500},
	{Name: "gpt-3.5", Aliases: []string{"35"}, MaxInputChars: 12250},
}

// Catalog returns a copy of the supported models in declaration order
func Catalog() []ModelDescriptor {
	out := make([]ModelDescriptor, len(catalog))
	for i, m := range catalog {
		out[i] = ModelDescriptor{
			Name:          m.Name,
			Aliases:       append([]string(nil), m.Aliases...),
			MaxInputChars: m.MaxInputChars,
		}
	}
	return out
}

// DefaultModel returns the canonical name used when no model is configured
func DefaultModel() string {
	return catalog[0].Name
}

// ResolveModel maps a canonical name or alias to its canonical name.
// An empty input selects the default model.
func ResolveModel(input string) (string, error) {
	if input == "" {
		return DefaultModel(), nil
	}

	for _, m := range catalog {
		if m.HasName(input) {
			return m.Name, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidModel, input)
}
