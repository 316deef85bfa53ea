package interviews

import (
	"context"
	"errors"

	"jobpowerup-backend/internal/llm"
	"jobpowerup-backend/internal/shared/telemetry"
)

const (
	quizTemperature = 0.4
	defaultCount    = 10
	maxCount        = 20
	maxAttempts     = 2
)

// ErrBadOutput means no attempt produced a parseable item list.
var ErrBadOutput = errors.New("model returned no usable quiz items")

// Item is one practice question with a model answer outline.
type Item struct {
	Question    string `json:"question"`
	IdealAnswer string `json:"idealAnswer"`
}

// Service generates interview-practice quizzes.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Quiz asks for count questions and repairs the answer into a clean item
// list, regenerating once if the first attempt yields nothing.
func (s *Service) Quiz(ctx context.Context, jobDescription string, count int) ([]Item, error) {
	if count <= 0 {
		count = defaultCount
	}
	if count > maxCount {
		count = maxCount
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		out, err := s.LLM.Complete(ctx, llm.Request{
			Messages:    llm.QuizPrompt(jobDescription, count),
			Temperature: quizTemperature,
			JSONMode:    true,
		})
		if err != nil {
			lastErr = err
			continue
		}
		if items := repairItems(out); len(items) > 0 {
			return items, nil
		}
		telemetry.Warn("interviews.quiz.unparseable", map[string]any{"attempt": attempt})
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrBadOutput
}
