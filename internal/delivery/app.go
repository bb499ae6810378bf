package delivery

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/Vovarama1992/groq_cli/internal/ai"
	"github.com/Vovarama1992/groq_cli/internal/config"
	"github.com/Vovarama1992/groq_cli/internal/error_notificator"
	"github.com/Vovarama1992/groq_cli/internal/infra"
)

// Streams are the process stdio, swappable in tests.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// IsTerminal reports whether In is an interactive terminal.
	IsTerminal func() bool
}

func StdStreams() Streams {
	return Streams{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// App holds what a single tool invocation shares between its command and error reporting.
type App struct {
	name    string
	streams Streams
	verbose bool

	base *zap.Logger
	log  *logger.ZapLogger

	newGenerator func(cfg *config.Config, log *logger.ZapLogger) ai.Service
}

func NewApp(name string, streams Streams) *App {
	return &App{
		name:    name,
		streams: streams,
		newGenerator: func(cfg *config.Config, log *logger.ZapLogger) ai.Service {
			return ai.NewAiService(infra.NewGroqClient(cfg), log)
		},
	}
}

// Logger is built on first use so --verbose has been parsed by then.
func (a *App) Logger() *logger.ZapLogger {
	if a.log != nil {
		return a.log
	}
	a.base = zap.NewNop()
	if a.verbose {
		a.base = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(a.streams.Err),
			zap.DebugLevel,
		))
	}
	a.log = logger.NewZapLogger(a.base.Sugar())
	return a.log
}

// Execute runs cmd and maps the outcome to an exit status: 0 on success, 1 otherwise.
// Every failure is reported as one line on the error stream.
func (a *App) Execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	cmd.SetIn(a.streams.In)
	cmd.SetOut(a.streams.Out)
	cmd.SetErr(a.streams.Err)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.Version = config.BuildInfo()
	cmd.Flags().BoolVar(&a.verbose, "verbose", false, "Log request details to stderr")

	err := cmd.ExecuteContext(ctx)
	defer func() {
		if a.base != nil {
			_ = a.base.Sync()
		}
	}()
	if err == nil {
		return 0
	}

	notifier := error_notificator.NewService(error_notificator.NewInfra(a.streams.Err, a.Logger(), a.name))
	_ = notifier.Notify(ctx, err, ai.Describe(err))
	return 1
}

func (a *App) printResult(s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(a.streams.Out, s)
	return err
}
