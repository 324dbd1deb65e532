package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	ping func(ctx context.Context) error
}

func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// HealthHandler handles GET /health
func (h *HealthHandler) HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, fmt.Errorf("store unreachable: %w", err), "service unavailable")
		utils.Error("HealthHandler: store ping failed", map[string]any{"error": err.Error()})
		return
	}

	c.String(http.StatusOK, "OK")
}
