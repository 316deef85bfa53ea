package health

import (
	"github.com/gin-gonic/gin"

	"jobpowerup-backend/internal/shared/config"
	"jobpowerup-backend/internal/shared/server/respond"
)

// Handler serves the health endpoint the UI polls for its build stamp.
type Handler struct {
	cfg config.Config
}

// NewHandler constructs a Handler.
func NewHandler(cfg config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// RegisterRoutes attaches the health route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{
		"ok":     true,
		"env":    h.cfg.Env,
		"commit": h.cfg.CommitSHA,
		"mockAI": h.cfg.ForceMockAI,
	})
}
