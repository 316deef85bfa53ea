package export

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/shared/server/respond"
	"jobpowerup-backend/internal/shared/util"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Handler serves the DOCX export endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/export-docx", h.export)
}

type exportRequest struct {
	Title    string `json:"title"`
	Sections []struct {
		Heading string `json:"heading"`
		Body    string `json:"body"`
	} `json:"sections"`
}

func (h *Handler) export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	if len(req.Sections) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sections must not be empty", nil)
		return
	}

	doc := Document{Title: strings.TrimSpace(req.Title)}
	for _, s := range req.Sections {
		doc.Sections = append(doc.Sections, Section{Heading: s.Heading, Body: s.Body})
	}

	data, err := Build(doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to build the document", nil)
		return
	}

	fileName := util.ExportFileName(doc.Title)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, docxContentType, data)
}
