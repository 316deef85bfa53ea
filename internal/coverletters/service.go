package coverletters

import (
	"context"
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"jobpowerup-backend/internal/llm"
	"jobpowerup-backend/internal/shared/telemetry"
)

const (
	profileTemperature = 0.2
	letterTemperature  = 0.5
	emptyProfile       = "{}"
)

// ErrEmptyCompletion means the model answered with nothing usable.
var ErrEmptyCompletion = errors.New("model returned empty output")

// Service writes cover letters in two stages: a JSON profile extraction over
// the résumé, then a plain-text composition against the fixed layout.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Generate produces the finished letter. Profile extraction is best-effort;
// when it fails the composition runs with an empty profile.
func (s *Service) Generate(ctx context.Context, resumeText, jobDescription string) (string, error) {
	profileJSON := s.extractProfile(ctx, resumeText, jobDescription)

	out, err := s.LLM.Complete(ctx, llm.Request{
		Messages:    llm.CoverLetterPrompt(profileJSON, resumeText, jobDescription),
		Temperature: letterTemperature,
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

func (s *Service) extractProfile(ctx context.Context, resumeText, jobDescription string) string {
	out, err := s.LLM.Complete(ctx, llm.Request{
		Messages:    llm.ProfilePrompt(resumeText, jobDescription),
		Temperature: profileTemperature,
		JSONMode:    true,
	})
	if err != nil {
		telemetry.Warn("coverletter.profile.degraded", map[string]any{"err": err.Error()})
		return emptyProfile
	}
	out = strings.TrimSpace(out)
	if !gjson.Valid(out) {
		telemetry.Warn("coverletter.profile.degraded", map[string]any{"err": "invalid json"})
		return emptyProfile
	}
	return out
}
