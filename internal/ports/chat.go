package ports

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string
	Content string
}

type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// Completion is the first candidate of a chat response.
type Completion struct {
	Content string
}
