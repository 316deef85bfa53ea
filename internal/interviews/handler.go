package interviews

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/shared/server/respond"
)

// Handler serves the interview-quiz endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches quiz routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interview-quiz", h.quiz)
}

type quizRequest struct {
	JobDescription string `json:"jobDescription"`
	Count          int    `json:"count"`
}

func (h *Handler) quiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	items, err := h.Svc.Quiz(c.Request.Context(), req.JobDescription, req.Count)
	if err != nil {
		if errors.Is(err, ErrBadOutput) {
			respond.Error(c, http.StatusBadGateway, "bad_ai_output", "could not generate questions, try again", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to generate the quiz", nil)
		return
	}

	respond.OK(c, gin.H{"items": items})
}
