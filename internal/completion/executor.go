package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Endpoint is the chat completions URL every request is sent to
const Endpoint = "https://api.openai.com/v1/chat/completions"

// NewRequest builds the request body for a prompt: the system role first, then the user prompt
func NewRequest(cfg Config, prompt string) Request {
	return Request{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		Messages: []Message{
			{Role: openai.ChatMessageRoleSystem, Content: cfg.Role},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
}

// Execute sends a single chat completion request through the host and
// returns the content of the first choice
func Execute(ctx context.Context, host Host, cfg Config, prompt string) (string, error) {
	body, err := json.Marshal(NewRequest(cfg, prompt))
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	res, err := host.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", newUpstreamError(res.StatusCode, data)
	}

	return parseResponse(data)
}

func parseResponse(data []byte) (string, error) {
	var resp openai.ChatCompletionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseParse, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func newUpstreamError(status int, body []byte) *UpstreamError {
	upstream := &UpstreamError{
		StatusCode: status,
		Body:       string(body),
	}

	var errResp openai.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		upstream.Message = errResp.Error.Message
	}

	return upstream
}
