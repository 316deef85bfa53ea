package bootstrap

import (
	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/analyses"
	"jobpowerup-backend/internal/assistant"
	"jobpowerup-backend/internal/coverletters"
	"jobpowerup-backend/internal/export"
	"jobpowerup-backend/internal/generate"
	"jobpowerup-backend/internal/health"
	"jobpowerup-backend/internal/interviews"
	"jobpowerup-backend/internal/jobfetch"
	"jobpowerup-backend/internal/jobs"
	"jobpowerup-backend/internal/llm"
	openai "jobpowerup-backend/internal/llm/openai"
	"jobpowerup-backend/internal/resumes"
	"jobpowerup-backend/internal/shared/config"
	"jobpowerup-backend/internal/shared/server"
	"jobpowerup-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	LLM     llm.Client
	Fetcher *jobfetch.Fetcher
}

// Build wires config, the model client, the fetcher, services and routes.
func Build(cfg config.Config) (*App, error) {
	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	analysesSvc := analyses.NewService(llmClient)
	coverLetterSvc := coverletters.NewService(llmClient)
	interviewsSvc := interviews.NewService(llmClient)
	assistantSvc := assistant.NewService(llmClient)
	jobsSvc := jobs.NewService(llmClient)
	generateSvc := generate.NewService(analysesSvc, coverLetterSvc, interviewsSvc)

	fetcher := jobfetch.New()
	if cfg.SummarizeImports {
		fetcher.Summarizer = jobsSvc
	}

	app := &App{
		Config:  cfg,
		LLM:     llmClient,
		Fetcher: fetcher,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		HealthHandler:      health.NewHandler(cfg),
		ResumesHandler:     resumes.NewHandler(),
		AnalysesHandler:    analyses.NewHandler(analysesSvc),
		CoverLetterHandler: coverletters.NewHandler(coverLetterSvc),
		InterviewsHandler:  interviews.NewHandler(interviewsSvc),
		AssistantHandler:   assistant.NewHandler(assistantSvc),
		JobsHandler:        jobs.NewHandler(fetcher, jobsSvc),
		ExportHandler:      export.NewHandler(),
		GenerateHandler:    generate.NewHandler(generateSvc),
	})

	return app, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.ForceMockAI {
		telemetry.Info("bootstrap.llm", map[string]any{"client": "mock"})
		return llm.MockClient{}, nil
	}
	if cfg.OpenAIAPIKey == "" {
		telemetry.Warn("bootstrap.llm", map[string]any{
			"client": "placeholder",
			"reason": "OPENAI_API_KEY not set",
		})
		return llm.PlaceholderClient{}, nil
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		return nil, err
	}
	telemetry.Info("bootstrap.llm", map[string]any{"client": "openai", "model": cfg.OpenAIModel})
	return client, nil
}
