package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/groq_cli/internal/ports"
)

const (
	DefaultModel       = "mixtral-8x7b-32768"
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

var ErrNoPrompt = errors.New("no prompt provided, use --prompt or pipe text to stdin")

// Config holds the generation options collected from the command line.
type Config struct {
	Prompt       string
	SystemPrompt string
	Model        string
	MaxTokens    int
	Temperature  float32
	TopP         float32
}

// ResolvePrompt prefers the flag value; otherwise it reads all of stdin, unless stdin is a terminal.
func ResolvePrompt(flagPrompt string, stdin io.Reader, interactive bool) (string, error) {
	if flagPrompt != "" {
		return flagPrompt, nil
	}
	if interactive || stdin == nil {
		return "", ErrNoPrompt
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	prompt := strings.TrimSpace(string(b))
	if prompt == "" {
		return "", ErrNoPrompt
	}
	return prompt, nil
}

// BuildMessages returns [system?, user].
func BuildMessages(systemPrompt, prompt string) []ports.Message {
	messages := make([]ports.Message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, ports.Message{Role: ports.RoleSystem, Content: systemPrompt})
	}
	return append(messages, ports.Message{Role: ports.RoleUser, Content: prompt})
}

type AiService struct {
	llm ports.ChatCompleter
	log *logger.ZapLogger
}

var _ Service = (*AiService)(nil)

func NewAiService(llm ports.ChatCompleter, log *logger.ZapLogger) *AiService {
	return &AiService{llm: llm, log: log}
}

func (s *AiService) GetReply(ctx context.Context, cfg Config) (string, error) {
	if cfg.Prompt == "" {
		return "", ErrNoPrompt
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	start := time.Now()
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[ai] >>> START model=%s max_tokens=%d system=%t", model, cfg.MaxTokens, cfg.SystemPrompt != ""),
		Service: "generate",
	})

	out, err := s.llm.ChatComplete(ctx, ports.ChatRequest{
		Model:       model,
		Messages:    BuildMessages(cfg.SystemPrompt, cfg.Prompt),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	})
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "error",
			Message: fmt.Sprintf("[ai][%.1fs] request failed", time.Since(start).Seconds()),
			Service: "generate",
			Error:   err,
		})
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[ai][%.1fs] done", time.Since(start).Seconds()),
		Service: "generate",
	})
	return out.Content, nil
}
