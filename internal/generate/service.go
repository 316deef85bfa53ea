package generate

import (
	"context"
	"errors"
	"sync"

	"jobpowerup-backend/internal/analyses"
	"jobpowerup-backend/internal/coverletters"
	"jobpowerup-backend/internal/interviews"
	"jobpowerup-backend/internal/shared/telemetry"
)

// ErrAllFailed means no branch of the bundle produced anything.
var ErrAllFailed = errors.New("all generation branches failed")

// Bundle is the combined output of one generate call. Failed branches leave
// their field empty and add a named warning instead of failing the request.
type Bundle struct {
	Improvements string            `json:"improvements"`
	CoverLetter  string            `json:"coverLetter"`
	Items        []interviews.Item `json:"items"`
	Warnings     []string          `json:"warnings"`
}

// Service fans one résumé/job pair out to all three generators at once.
type Service struct {
	Analyses     *analyses.Service
	CoverLetters *coverletters.Service
	Interviews   *interviews.Service
}

// NewService constructs a Service.
func NewService(a *analyses.Service, cl *coverletters.Service, iv *interviews.Service) *Service {
	return &Service{Analyses: a, CoverLetters: cl, Interviews: iv}
}

// Generate runs improvements, cover letter and quiz concurrently and merges
// the results. Warnings keep the same order regardless of finish order.
func (s *Service) Generate(ctx context.Context, resumeText, jobDescription string, count int) (Bundle, error) {
	var (
		wg        sync.WaitGroup
		bundle    Bundle
		errImp    error
		errLetter error
		errQuiz   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		bundle.Improvements, errImp = s.Analyses.Improvements(ctx, resumeText, jobDescription)
	}()
	go func() {
		defer wg.Done()
		bundle.CoverLetter, errLetter = s.CoverLetters.Generate(ctx, resumeText, jobDescription)
	}()
	go func() {
		defer wg.Done()
		bundle.Items, errQuiz = s.Interviews.Quiz(ctx, jobDescription, count)
	}()
	wg.Wait()

	if errImp != nil {
		telemetry.Warn("generate.improvements.failed", map[string]any{"err": errImp.Error()})
		bundle.Warnings = append(bundle.Warnings, "improvement notes could not be generated")
	}
	if errLetter != nil {
		telemetry.Warn("generate.coverletter.failed", map[string]any{"err": errLetter.Error()})
		bundle.Warnings = append(bundle.Warnings, "cover letter could not be generated")
	}
	if errQuiz != nil {
		telemetry.Warn("generate.quiz.failed", map[string]any{"err": errQuiz.Error()})
		bundle.Warnings = append(bundle.Warnings, "interview questions could not be generated")
	}

	if errImp != nil && errLetter != nil && errQuiz != nil {
		return Bundle{}, ErrAllFailed
	}
	return bundle, nil
}
