package generate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"jobpowerup-backend/internal/analyses"
	"jobpowerup-backend/internal/coverletters"
	"jobpowerup-backend/internal/interviews"
	"jobpowerup-backend/internal/llm"
)

// routingLLM answers by request shape: JSON-mode requests get quiz or
// profile JSON, plain requests get improvements or the letter.
type routingLLM struct {
	mu       sync.Mutex
	failJSON bool
	failText bool
}

func (r *routingLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if req.JSONMode {
		if r.failJSON {
			return "", errors.New("json branch down")
		}
		return `{"items":[{"question":"Q","idealAnswer":"A"}],"fullName":"Alex"}`, nil
	}
	if r.failText {
		return "", errors.New("text branch down")
	}
	return "- Improve the top bullet.", nil
}

func newService(client llm.Client) *Service {
	return NewService(
		analyses.NewService(client),
		coverletters.NewService(client),
		interviews.NewService(client),
	)
}

func TestGenerateAllBranches(t *testing.T) {
	svc := newService(&routingLLM{})

	bundle, err := svc.Generate(context.Background(), "resume", "job", 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if bundle.Improvements == "" || bundle.CoverLetter == "" || len(bundle.Items) == 0 {
		t.Fatalf("expected all branches filled, got %+v", bundle)
	}
	if len(bundle.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", bundle.Warnings)
	}
}

func TestGeneratePartialFailureWarns(t *testing.T) {
	svc := newService(&routingLLM{failJSON: true})

	bundle, err := svc.Generate(context.Background(), "resume", "job", 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if bundle.Improvements == "" {
		t.Fatal("expected improvements despite quiz failure")
	}
	if len(bundle.Items) != 0 {
		t.Fatalf("expected no quiz items, got %+v", bundle.Items)
	}
	found := false
	for _, warning := range bundle.Warnings {
		if strings.Contains(warning, "interview questions") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a quiz warning, got %v", bundle.Warnings)
	}
}

func TestGenerateAllFailed(t *testing.T) {
	svc := newService(&routingLLM{failJSON: true, failText: true})

	if _, err := svc.Generate(context.Background(), "resume", "job", 5); !errors.Is(err, ErrAllFailed) {
		t.Fatalf("expected ErrAllFailed, got %v", err)
	}
}
