package delivery

import (
	"github.com/spf13/cobra"

	"github.com/Vovarama1992/groq_cli/internal/config"
	"github.com/Vovarama1992/groq_cli/internal/infra"
	"github.com/Vovarama1992/groq_cli/internal/ports"
	"github.com/Vovarama1992/groq_cli/internal/speech"
)

func NewTranscribeCmd(a *App) *cobra.Command {
	opts := speech.Config{Format: ports.FormatText}

	cmd := &cobra.Command{
		Use:   "transcribe --audio-file <path>",
		Short: "Speech recognition with Whisper Large v3 via Groq",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			svc := speech.NewService(infra.NewGroqClient(cfg), a.Logger())
			tr, err := svc.Transcribe(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.printResult(tr.Output())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.AudioFile, "audio-file", "", "Path to audio file")
	f.StringVar(&opts.Language, "language", "", `Optional language code (e.g., "en", "fr")`)
	f.Var(&opts.Format, "response-format", "Response format: text, json, verbose_json, srt or vtt")
	f.Float32Var(&opts.Temperature, "temperature", 0, "Sampling temperature")
	f.StringVar(&opts.Model, "model", speech.DefaultModel, "Model identifier")
	_ = cmd.MarkFlagRequired("audio-file")

	return cmd
}
