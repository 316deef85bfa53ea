package assistant

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/llm"
	"jobpowerup-backend/internal/shared/server/respond"
)

// Handler serves the assistant-chat endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant-chat", h.chat)
}

type chatRequest struct {
	Messages []llm.Message  `json:"messages"`
	Context  map[string]any `json:"context"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}

	history := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := strings.TrimSpace(m.Role)
		if role != "user" && role != "assistant" {
			continue
		}
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}
	if len(history) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "messages must contain at least one user or assistant turn", nil)
		return
	}

	reply := h.Svc.Reply(c.Request.Context(), history, req.Context)
	respond.OK(c, gin.H{"reply": reply})
}
