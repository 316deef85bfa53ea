package jobs

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/jobfetch"
	"jobpowerup-backend/internal/shared/server/respond"
)

const minSummarizeChars = 50

// Fetcher resolves a job-posting URL to cleaned text.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (jobfetch.Result, error)
}

// Handler serves the job import and summarize endpoints.
type Handler struct {
	Fetcher Fetcher
	Svc     *Service
}

// NewHandler constructs a Handler.
func NewHandler(fetcher Fetcher, svc *Service) *Handler {
	return &Handler{Fetcher: fetcher, Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/job-from-link", h.fromLink)
	rg.POST("/summarize-job", h.summarize)
}

type fromLinkRequest struct {
	URL string `json:"url"`
}

func (h *Handler) fromLink(c *gin.Context) {
	var req fromLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "url is required", nil)
		return
	}

	res, err := h.Fetcher.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, jobfetch.ErrInvalidURL):
			respond.Error(c, http.StatusUnprocessableEntity, "invalid_url", "url must start with http or https", nil)
		case errors.Is(err, jobfetch.ErrBlocked):
			respond.Error(c, http.StatusUnavailableForLegalReasons, "blocked",
				"this site is blocking automated access; use the bookmarklet to import the posting instead", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to import the job posting", nil)
		}
		return
	}

	body := gin.H{"text": res.Text, "via": res.Via}
	if res.Title != "" {
		body["title"] = res.Title
	}
	respond.OK(c, body)
}

type summarizeRequest struct {
	Text string `json:"text"`
}

func (h *Handler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if len(strings.TrimSpace(req.Text)) < minSummarizeChars {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text must be at least 50 characters", nil)
		return
	}

	summary, err := h.Svc.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			respond.Error(c, http.StatusBadGateway, "bad_ai_output", "the model returned an empty answer, try again", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to summarize the job posting", nil)
		return
	}

	respond.OK(c, gin.H{"summary": summary})
}
