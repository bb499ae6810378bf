package infra

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Vovarama1992/groq_cli/internal/config"
	"github.com/Vovarama1992/groq_cli/internal/ports"
)

// ErrEmptyResponse is returned when a chat response has no candidates.
var ErrEmptyResponse = errors.New("empty response: no choices returned")

// GroqClient talks to Groq through its OpenAI-compatible endpoints.
type GroqClient struct {
	client *openai.Client
}

var (
	_ ports.Transcriber   = (*GroqClient)(nil)
	_ ports.ChatCompleter = (*GroqClient)(nil)
)

func NewGroqClient(cfg *config.Config) *GroqClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = &http.Client{Transport: bodyCapture{next: http.DefaultTransport}}
	return &GroqClient{
		client: openai.NewClientWithConfig(oc),
	}
}

type captureKey struct{}

// bodyCapture copies the response body into the *[]byte stored in the request context, if any.
type bodyCapture struct {
	next http.RoundTripper
}

func (b bodyCapture) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := b.next.RoundTrip(req)
	if err != nil {
		return resp, err
	}
	sink, ok := req.Context().Value(captureKey{}).(*[]byte)
	if !ok {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	*sink = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

// sampling maps an explicit 0 to the smallest non-zero float32, since go-openai omits zero values.
func sampling(v float32) float32 {
	if v == 0 {
		return math.SmallestNonzeroFloat32
	}
	return v
}

func (c *GroqClient) Transcribe(ctx context.Context, req ports.TranscriptionRequest) (ports.Transcript, error) {
	var raw []byte
	if req.Format.IsJSON() {
		ctx = context.WithValue(ctx, captureKey{}, &raw)
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:       req.Model,
		Reader:      req.Audio,
		FilePath:    req.FileName,
		Language:    req.Language,
		Format:      openai.AudioResponseFormat(req.Format),
		Temperature: sampling(req.Temperature),
	})
	if err != nil {
		return ports.Transcript{}, err
	}
	return toTranscript(req.Format, resp.Text, raw)
}

// toTranscript picks the transcript variant once, from the body as the server sent it.
func toTranscript(format ports.ResponseFormat, text string, raw []byte) (ports.Transcript, error) {
	// text, srt and vtt bodies arrive verbatim in text
	if !format.IsJSON() {
		return ports.Transcript{Kind: ports.PlainText, Text: text}, nil
	}

	var shape struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return ports.Transcript{}, fmt.Errorf("decode transcription payload: %w", err)
	}
	if shape.Text != nil && *shape.Text != "" {
		return ports.Transcript{Kind: ports.PlainText, Text: *shape.Text}, nil
	}
	return ports.Transcript{Kind: ports.Structured, Raw: raw}, nil
}

func (c *GroqClient) ChatComplete(ctx context.Context, req ports.ChatRequest) (ports.Completion, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: sampling(req.Temperature),
		TopP:        sampling(req.TopP),
	})
	if err != nil {
		return ports.Completion{}, err
	}
	if len(resp.Choices) == 0 {
		return ports.Completion{}, ErrEmptyResponse
	}
	return ports.Completion{Content: resp.Choices[0].Message.Content}, nil
}
