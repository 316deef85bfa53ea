package analyses

import (
	"context"
	"errors"
	"strings"

	"jobpowerup-backend/internal/llm"
)

const improvementsTemperature = 0.3

// ErrEmptyCompletion means the model answered with nothing usable.
var ErrEmptyCompletion = errors.New("model returned empty output")

// Service produces résumé improvement notes against a job description.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Improvements runs a single completion with the hiring-manager prompt and
// returns the bullet list as plain text.
func (s *Service) Improvements(ctx context.Context, resumeText, jobDescription string) (string, error) {
	out, err := s.LLM.Complete(ctx, llm.Request{
		Messages:    llm.ImprovementsPrompt(resumeText, jobDescription),
		Temperature: improvementsTemperature,
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
