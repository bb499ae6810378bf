package ports

import "context"

// Transcriber sends audio to a hosted speech-recognition model.
type Transcriber interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (Transcript, error)
}

// ChatCompleter sends a chat-style request to a hosted language model.
type ChatCompleter interface {
	ChatComplete(ctx context.Context, req ChatRequest) (Completion, error)
}
