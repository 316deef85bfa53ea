package generate

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/interviews"
	"jobpowerup-backend/internal/resumes"
	"jobpowerup-backend/internal/shared/server/respond"
)

// Handler serves the combined generate endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	res, err := resumes.FromUpload(c)
	if err != nil {
		resumes.RespondError(c, err)
		return
	}

	jobDescription := strings.TrimSpace(c.PostForm("jobDescription"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	count := 0
	if raw := strings.TrimSpace(c.PostForm("count")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			count = parsed
		}
	}

	bundle, err := h.Svc.Generate(c.Request.Context(), res.Text, jobDescription, count)
	if err != nil {
		if errors.Is(err, ErrAllFailed) {
			respond.Error(c, http.StatusBadGateway, "bad_ai_output", "nothing could be generated, try again", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to generate content", nil)
		return
	}

	if bundle.Items == nil {
		bundle.Items = []interviews.Item{}
	}
	if bundle.Warnings == nil {
		bundle.Warnings = []string{}
	}
	respond.OK(c, bundle)
}
