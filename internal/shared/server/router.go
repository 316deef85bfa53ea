package server

import (
	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/analyses"
	"jobpowerup-backend/internal/assistant"
	"jobpowerup-backend/internal/coverletters"
	"jobpowerup-backend/internal/export"
	"jobpowerup-backend/internal/generate"
	"jobpowerup-backend/internal/health"
	"jobpowerup-backend/internal/interviews"
	"jobpowerup-backend/internal/jobs"
	"jobpowerup-backend/internal/resumes"
	"jobpowerup-backend/internal/shared/config"
	"jobpowerup-backend/internal/shared/metrics"
	"jobpowerup-backend/internal/shared/server/middleware"
)

// Rate-limit groups. AI endpoints burn model tokens, scraping hits third
// parties, everything else is cheap.
const (
	groupAI      = "AI"
	groupScrape  = "SCRAPE"
	groupDefault = "DEFAULT"
)

var aiPaths = map[string]struct{}{
	"/api/analyze":        {},
	"/api/cover-letter":   {},
	"/api/interview-quiz": {},
	"/api/assistant-chat": {},
	"/api/summarize-job":  {},
	"/api/generate":       {},
}

// RouterDeps carries the feature handlers into route registration.
type RouterDeps struct {
	Config             config.Config
	HealthHandler      *health.Handler
	ResumesHandler     *resumes.Handler
	AnalysesHandler    *analyses.Handler
	CoverLetterHandler *coverletters.Handler
	InterviewsHandler  *interviews.Handler
	AssistantHandler   *assistant.Handler
	JobsHandler        *jobs.Handler
	ExportHandler      *export.Handler
	GenerateHandler    *generate.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	deps.HealthHandler.RegisterRoutes(api)
	deps.ResumesHandler.RegisterRoutes(api)
	deps.AnalysesHandler.RegisterRoutes(api)
	deps.CoverLetterHandler.RegisterRoutes(api)
	deps.InterviewsHandler.RegisterRoutes(api)
	deps.AssistantHandler.RegisterRoutes(api)
	deps.JobsHandler.RegisterRoutes(api)
	deps.ExportHandler.RegisterRoutes(api)
	deps.GenerateHandler.RegisterRoutes(api)

	return r
}

func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			groupAI:      {Rate: 0.5, Burst: 6},
			groupScrape:  {Rate: 1, Burst: 10},
			groupDefault: {Rate: 10, Burst: 30},
		},
		DefaultGroup: groupDefault,
		GroupFor: func(c *gin.Context) string {
			path := c.FullPath()
			if path == "" {
				path = c.Request.URL.Path
			}
			if _, ok := aiPaths[path]; ok {
				return groupAI
			}
			if path == "/api/job-from-link" {
				return groupScrape
			}
			return groupDefault
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
