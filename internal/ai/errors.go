package ai

import (
	"context"
	"errors"
	"net"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Describe returns a short operator hint for a failed API call, or "" when nothing better
// than the error itself is known.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "interrupted"
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == http.StatusUnauthorized:
		return "invalid API key"
	case status == http.StatusForbidden:
		return "API key has no access to this resource"
	case status == http.StatusNotFound:
		return "endpoint or model not found"
	case status == http.StatusRequestEntityTooLarge:
		return "audio file too large"
	case status == http.StatusTooManyRequests:
		return "rate limit exceeded"
	case status == http.StatusBadRequest:
		return "request rejected by the API"
	case status >= 500:
		return "upstream service error"
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return "network failure"
	}
	return ""
}
