package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Kavirubc/openai-completions/internal/completion"
	"github.com/Kavirubc/openai-completions/internal/config"
	"github.com/Kavirubc/openai-completions/internal/host"
)

// httpClient overrides the runtime's HTTP client when set
var httpClient *http.Client

// loadConfig loads the config file if one is found, falling back to defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(config.FindConfigPath(cfgFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newRuntime builds the host runtime for cfg, logging to the command's stderr
func newRuntime(cmd *cobra.Command, cfg *config.Config) (*host.Runtime, error) {
	level, ok := completion.ParseLevel(cfg.LogLevel)
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	opts := []host.Option{
		host.WithLevel(level),
		host.WithLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags)),
	}
	if httpClient != nil {
		opts = append(opts, host.WithHTTPClient(httpClient))
	}

	return host.NewRuntime(cfg.Values(), opts...), nil
}
