package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kavirubc/openai-completions/internal/completion"
)

func newModelsCmd() *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List supported models and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd, cfg)
			if err != nil {
				return err
			}

			plugin := completion.New(rt)
			out := cmd.OutOrStdout()

			if names {
				for _, m := range plugin.Models() {
					fmt.Fprintln(out, m.Name)
				}
				return nil
			}

			data, err := plugin.ModelsJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "print canonical model names only")

	return cmd
}
