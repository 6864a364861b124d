package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Kavirubc/openai-completions/internal/completion"
)

const rawSuffix = "\nomit any markdown formatting in response"

// askPrompt asks for a prompt interactively when none was given
var askPrompt = func() (string, error) {
	var prompt string
	err := huh.NewInput().
		Title("What would you like to ask or discuss?").
		Value(&prompt).
		WithTheme(huh.ThemeCharm()).
		Run()
	return prompt, err
}

func newCompleteCmd() *cobra.Command {
	var (
		model       string
		temperature string
		role        string
		raw         bool
	)

	cmd := &cobra.Command{
		Use:   "complete [prompt]",
		Short: "Send a prompt and print the completion",
		Long: `Send a prompt to the chat completions API and print the reply.

The prompt is read from piped stdin, the argument, or both (stdin first).
Without either, the prompt is asked for interactively. The reply is rendered
as markdown unless --raw is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			prompt, err := readPrompt(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if prompt == "" {
				if prompt, err = askPrompt(); err != nil {
					return fmt.Errorf("failed to read prompt: %w", err)
				}
			}
			if prompt == "" {
				return errors.New("no prompt given")
			}
			if raw {
				prompt += rawSuffix
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd, cfg)
			if err != nil {
				return err
			}
			rt.Set(completion.KeyModel, model)
			rt.Set(completion.KeyTemperature, temperature)
			rt.Set(completion.KeyRole, role)

			res, err := completion.New(rt).Complete(ctx, prompt)
			if err != nil {
				return fmt.Errorf("completion failed: %w", err)
			}

			if !raw {
				if res, err = glamour.Render(res, "dark"); err != nil {
					return fmt.Errorf("failed to render response: %w", err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model name or alias")
	cmd.Flags().StringVarP(&temperature, "temperature", "t", "", "sampling temperature between 0.0 and 1.0")
	cmd.Flags().StringVarP(&role, "role", "r", "", "system role message")
	cmd.Flags().BoolVar(&raw, "raw", false, "raw output without markdown formatting")

	return cmd
}

// readPrompt joins piped stdin with the prompt argument
func readPrompt(in io.Reader, args []string) (string, error) {
	var prompt strings.Builder

	if isPiped(in) {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		prompt.Write(data)
	}

	if len(args) == 1 {
		prompt.WriteString(args[0])
	}

	return prompt.String(), nil
}

// isPiped reports whether in carries data rather than an interactive terminal
func isPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return in != nil
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice == 0
}
