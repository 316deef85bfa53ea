package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"jobpowerup-backend/internal/llm"
	"jobpowerup-backend/internal/shared/telemetry"
)

const (
	chatTemperature = 0.5
	maxHistory      = 20

	// Returned instead of an error so the chat widget never breaks.
	fallbackReply = "Sorry, I hit a snag answering that. Please try again in a moment."
)

// Service answers chat turns with the career-assistant persona. It is
// stateless; the client sends the full history each turn.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Reply builds the persona plus optional context messages, appends the
// incoming history, and completes. Upstream failures degrade to a canned
// apology instead of an error.
func (s *Service) Reply(ctx context.Context, history []llm.Message, chatContext map[string]any) string {
	messages := []llm.Message{{Role: "system", Content: llm.AssistantSystemPrompt}}
	if len(chatContext) > 0 {
		if raw, err := json.Marshal(chatContext); err == nil {
			messages = append(messages, llm.Message{
				Role:    "system",
				Content: "Context from the user's current session (JSON):\n" + string(raw),
			})
		}
	}
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	messages = append(messages, history...)

	out, err := s.LLM.Complete(ctx, llm.Request{
		Messages:    messages,
		Temperature: chatTemperature,
	})
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			telemetry.Warn("assistant.reply.degraded", map[string]any{"err": err.Error()})
		}
		return fallbackReply
	}
	return strings.TrimSpace(out)
}
