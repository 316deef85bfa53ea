package coverletters

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/resumes"
	"jobpowerup-backend/internal/shared/server/respond"
	"jobpowerup-backend/internal/uploads"
)

// Handler serves the cover-letter endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches cover-letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cover-letter", h.generate)
}

// The form accepts either an uploaded file or a pre-extracted resumeText
// field, so the UI can reuse the text from an earlier parse call.
func (h *Handler) generate(c *gin.Context) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "send the form as multipart/form-data", nil)
		return
	}

	var resumeText string
	res, err := resumes.FromUpload(c)
	switch {
	case err == nil:
		resumeText = res.Text
	case errors.Is(err, uploads.ErrMissingFile):
		resumeText = strings.TrimSpace(c.PostForm("resumeText"))
	default:
		resumes.RespondError(c, err)
		return
	}
	if resumeText == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file or resumeText is required", nil)
		return
	}

	jobDescription := strings.TrimSpace(c.PostForm("jobDescription"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), resumeText, jobDescription)
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			respond.Error(c, http.StatusBadGateway, "bad_ai_output", "the model returned an empty answer, try again", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to write the cover letter", nil)
		return
	}

	respond.OK(c, gin.H{"coverLetter": letter})
}
