package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unauthorized", err: &openai.APIError{HTTPStatusCode: 401, Message: "Invalid API Key"}, want: "invalid API key"},
		{name: "wrapped not found", err: fmt.Errorf("call: %w", &openai.APIError{HTTPStatusCode: 404}), want: "endpoint or model not found"},
		{name: "too large", err: &openai.RequestError{HTTPStatusCode: 413, Err: errors.New("too large")}, want: "audio file too large"},
		{name: "rate limited", err: &openai.APIError{HTTPStatusCode: 429}, want: "rate limit exceeded"},
		{name: "bad gateway", err: &openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")}, want: "upstream service error"},
		{name: "canceled", err: context.Canceled, want: "interrupted"},
		{name: "unknown", err: errors.New("something odd"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
