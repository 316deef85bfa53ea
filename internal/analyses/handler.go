package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/resumes"
	"jobpowerup-backend/internal/shared/server/respond"
)

// Handler serves the analyze endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
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

	improvements, err := h.Svc.Improvements(c.Request.Context(), res.Text, jobDescription)
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			respond.Error(c, http.StatusBadGateway, "bad_ai_output", "the model returned an empty answer, try again", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to analyze the resume", nil)
		return
	}

	respond.OK(c, gin.H{"improvements": improvements})
}
