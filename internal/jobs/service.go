package jobs

import (
	"context"
	"errors"
	"strings"

	"jobpowerup-backend/internal/llm"
)

const summarizeTemperature = 0.2

// ErrEmptyCompletion means the model answered with nothing usable.
var ErrEmptyCompletion = errors.New("model returned empty output")

// Service cleans raw job-posting text down to the posting itself. It also
// satisfies the fetcher's Summarizer interface so imported pages get the
// same cleanup pass.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Summarize strips navigation and boilerplate, keeping responsibilities,
// qualifications, stack and logistics.
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	out, err := s.LLM.Complete(ctx, llm.Request{
		Messages:    llm.SummarizePrompt(text),
		Temperature: summarizeTemperature,
	})
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}
