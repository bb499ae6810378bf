package delivery

import (
	"github.com/spf13/cobra"

	"github.com/Vovarama1992/groq_cli/internal/ai"
	"github.com/Vovarama1992/groq_cli/internal/config"
)

func NewGenerateCmd(a *App) *cobra.Command {
	var opts ai.Config

	cmd := &cobra.Command{
		Use:   "generate [--prompt <text>]",
		Short: "Text inference with Groq Mixtral 8x7B",
		Long:  "Sends one chat request and prints the first completion. Without --prompt, piped stdin is used as the prompt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			opts.Prompt, err = ai.ResolvePrompt(opts.Prompt, a.streams.In, a.streams.IsTerminal())
			if err != nil {
				return err
			}

			svc := a.newGenerator(cfg, a.Logger())
			reply, err := svc.GetReply(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.printResult(reply)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Prompt, "prompt", "", "Input prompt for text generation")
	f.IntVar(&opts.MaxTokens, "max-tokens", ai.DefaultMaxTokens, "Maximum number of tokens to generate")
	f.Float32Var(&opts.Temperature, "temperature", ai.DefaultTemperature, "Sampling temperature")
	f.Float32Var(&opts.TopP, "top-p", ai.DefaultTopP, "Top-p sampling parameter")
	f.StringVar(&opts.SystemPrompt, "system-prompt", "", "Optional system prompt")
	f.StringVar(&opts.Model, "model", ai.DefaultModel, "Model identifier")

	return cmd
}
