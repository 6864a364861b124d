// Package host provides the process-level implementation of completion.Host.
package host

import (
	"log"
	"net/http"

	"github.com/Kavirubc/openai-completions/internal/completion"
)

// Runtime serves configuration values, outbound HTTP and logging to a completion call
type Runtime struct {
	values map[string]string
	client *http.Client
	logger *log.Logger
	level  completion.Level
}

// Option configures a Runtime
type Option func(*Runtime)

// WithHTTPClient sets the client used for outbound requests
func WithHTTPClient(c *http.Client) Option {
	return func(r *Runtime) {
		r.client = c
	}
}

// WithLogger sets the logger diagnostic messages are written to
func WithLogger(l *log.Logger) Option {
	return func(r *Runtime) {
		r.logger = l
	}
}

// WithLevel sets the most verbose level that is written
func WithLevel(level completion.Level) Option {
	return func(r *Runtime) {
		r.level = level
	}
}

// NewRuntime creates a Runtime over a copy of values
func NewRuntime(values map[string]string, opts ...Option) *Runtime {
	r := &Runtime{
		values: make(map[string]string, len(values)),
		client: http.DefaultClient,
		logger: log.Default(),
		level:  completion.LevelOff,
	}
	for k, v := range values {
		r.values[k] = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Set overrides a configuration value. Empty values are ignored.
func (r *Runtime) Set(key, value string) {
	if value != "" {
		r.values[key] = value
	}
}

// Config implements completion.Host
func (r *Runtime) Config(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Do implements completion.Host
func (r *Runtime) Do(req *http.Request) (*http.Response, error) {
	return r.client.Do(req)
}

// Log implements completion.Host
func (r *Runtime) Log(level completion.Level, msg string) {
	if level == completion.LevelOff || level > r.level {
		return
	}
	msg = Redact(msg)
	if key := r.values[completion.KeyAPIKey]; key != "" {
		msg = redactLiteral(msg, key)
	}
	r.logger.Printf("[%s] %s", level, msg)
}
