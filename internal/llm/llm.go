package llm

import (
	"context"
	"errors"
)

// Message is a single chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request captures the inputs for one completion call.
type Request struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
	JSONMode    bool
}

// Client abstracts chat-completion providers.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}

// User builds a single-user-message request body.
func User(content string) []Message {
	return []Message{{Role: "user", Content: content}}
}
