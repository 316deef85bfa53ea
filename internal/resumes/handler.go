package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/extract"
	"jobpowerup-backend/internal/shared/server/respond"
	"jobpowerup-backend/internal/uploads"
)

// Handler serves the résumé parse and validate endpoints.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches résumé routes to the router group. validate-resume
// is an alias the UI calls as a pre-flight check before generating anything.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse-resume", h.parse)
	rg.POST("/validate-resume", h.parse)
}

func (h *Handler) parse(c *gin.Context) {
	res, err := FromUpload(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	respond.OK(c, gin.H{
		"text":  res.Text,
		"chars": res.Chars,
	})
}

// FromUpload reads the "file" multipart field and extracts its text.
func FromUpload(c *gin.Context) (extract.Result, error) {
	file, err := uploads.FromRequest(c, "file")
	if err != nil {
		return extract.Result{}, err
	}
	return extract.Extract(c.Request.Context(), file.Data, file.Name, file.Mime)
}

// RespondError maps upload and extraction failures onto the error envelope.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, uploads.ErrNotMultipart):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "send the resume as multipart/form-data", nil)
	case errors.Is(err, uploads.ErrMissingFile):
		respond.Error(c, http.StatusBadRequest, "validation_error", "file field is required", nil)
	case errors.Is(err, uploads.ErrTooLarge):
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds 5MB limit", nil)
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "unsupported_format", "unsupported file type, use PDF or DOCX", nil)
	case errors.Is(err, extract.ErrNoExtractableText):
		respond.Error(c, http.StatusUnprocessableEntity, "no_text", "could not read any text from the file", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to process the file", nil)
	}
}
