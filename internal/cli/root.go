package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	version  = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "openai-completions",
		Short: "OpenAI chat completions from the command line",
		Long: `openai-completions sends a single prompt to the OpenAI Chat Completions API
and prints the reply.

Model, temperature and system role come from the config file and can be
overridden with flags. The API key is read from the config file or OPENAI_API_KEY.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level (off, error, warn, info, debug)")

	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newModelsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "openai-completions version %s\n", version)
		},
	}
}
