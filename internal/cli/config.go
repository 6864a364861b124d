package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kavirubc/openai-completions/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfgPath := config.FindConfigPath(cfgFile)
			if cfgPath == "" {
				fmt.Fprintln(out, "No config file found, validating defaults and environment")
			} else {
				fmt.Fprintf(out, "Validating config: %s\n", cfgPath)
			}

			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			errs := config.Validate(cfg)
			if len(errs) > 0 {
				fmt.Fprintln(out, "\nValidation errors:")
				for _, e := range errs {
					fmt.Fprintf(out, "  - %v\n", e)
				}
				return fmt.Errorf("configuration is invalid")
			}

			temperature := cfg.Temperature
			if temperature == "" {
				temperature = "default"
			}

			fmt.Fprintln(out, "\nConfiguration is valid!")
			fmt.Fprintf(out, "  - Model: %s\n", cfg.ResolvedModel())
			fmt.Fprintf(out, "  - Temperature: %s\n", temperature)
			fmt.Fprintf(out, "  - Role set: %t\n", cfg.Role != "")
			fmt.Fprintf(out, "  - Log level: %s\n", cfg.LogLevel)

			return nil
		},
	}
}
