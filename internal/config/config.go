package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	APIKeyEnv  = "GROQ_API_KEY"
	BaseURLEnv = "GROQ_BASE_URL"

	DefaultBaseURL = "https://api.groq.com/openai/v1"
)

// ErrMissingAPIKey is returned when GROQ_API_KEY is unset or empty.
var ErrMissingAPIKey = errors.New(APIKeyEnv + " environment variable not set (set it with: export " + APIKeyEnv + "='your-api-key')")

// build info, set with -ldflags "-X github.com/Vovarama1992/groq_cli/internal/config.Version=..."
var (
	Version = "unknown"
	Commit  = "unknown"
)

// Config is the environment both tools need before talking to the API.
type Config struct {
	APIKey  string
	BaseURL string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// .env is optional, real env vars win
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary env lookup.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	key, _ := lookup(APIKeyEnv)
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL, _ := lookup(BaseURLEnv)
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Config{
		APIKey:  key,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// BuildInfo renders Version and a short Commit for --version.
func BuildInfo() string {
	commit := Commit
	if len(commit) >= 7 {
		commit = commit[:7]
	}
	return Version + " (commit " + commit + ")"
}
