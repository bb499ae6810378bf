package ai

import "context"

type Service interface {
	// GetReply sends the prompt (and optional system prompt) and returns the first candidate's text.
	GetReply(ctx context.Context, cfg Config) (string, error)
}
