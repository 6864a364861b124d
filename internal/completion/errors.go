package completion

import (
	"errors"
	"fmt"

	"github.com/Kavirubc/openai-completions/pkg/models"
)

var (
	ErrInvalidModel          = models.ErrInvalidModel
	ErrInvalidTemperature    = errors.New("temperature must be a float")
	ErrTemperatureOutOfRange = errors.New("temperature must be between 0.0 and 1.0")
	ErrMissingAPIKey         = errors.New("api_key not set")
	ErrResponseParse         = errors.New("failed to parse completion response")
	ErrEmptyCompletion       = errors.New("no completion choices returned")
)

// UpstreamError is returned when the chat completions API answers with a non-200 status
type UpstreamError struct {
	StatusCode int
	Body       string
	// Message is the API's error.message, if the body carried one
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
