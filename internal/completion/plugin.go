package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Kavirubc/openai-completions/pkg/models"
)

// Plugin exposes the two completion entry points: listing models and completing a prompt
type Plugin struct {
	host Host
}

// New creates a Plugin bound to a host
func New(host Host) *Plugin {
	return &Plugin{host: host}
}

// Models returns the supported models in catalog order
func (p *Plugin) Models() []models.ModelDescriptor {
	p.host.Log(LevelInfo, "Returning models")
	return models.Catalog()
}

// ModelsJSON returns the model catalog encoded as a JSON array
func (p *Plugin) ModelsJSON() ([]byte, error) {
	data, err := json.Marshal(p.Models())
	if err != nil {
		p.host.Log(LevelError, fmt.Sprintf("Error converting models to JSON: %v", err))
		return nil, fmt.Errorf("failed to encode models: %w", err)
	}
	return data, nil
}

// Complete validates the host configuration, sends prompt to the chat
// completions API and returns the reply terminated by a newline
func (p *Plugin) Complete(ctx context.Context, prompt string) (string, error) {
	id := uuid.NewString()

	cfg, err := LoadConfig(p.host)
	if err != nil {
		p.host.Log(LevelError, fmt.Sprintf("[%s] Error getting config: %v", id, err))
		return "", err
	}

	p.host.Log(LevelDebug, fmt.Sprintf("[%s] Prompt: %s", id, prompt))

	content, err := Execute(ctx, p.host, cfg, prompt)
	if err != nil {
		p.host.Log(LevelError, fmt.Sprintf("[%s] Error getting completions response: %v", id, err))
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			p.host.Log(LevelDebug, fmt.Sprintf("[%s] Upstream response body: %s", id, upstream.Body))
		}
		return "", err
	}

	p.host.Log(LevelInfo, fmt.Sprintf("[%s] Completion received from %s", id, cfg.Model))
	return content + "\n", nil
}
