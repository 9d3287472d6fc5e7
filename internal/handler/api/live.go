package api

import (
	"log/slog"

	"gym-booking/internal/infra/broadcast"

	"github.com/gin-gonic/gin"
)

type LiveHandler struct {
	hub      *broadcast.Hub
	upgrader *broadcast.Upgrader
	logger   *slog.Logger
}

func NewLiveHandler(hub *broadcast.Hub, upgrader *broadcast.Upgrader, logger *slog.Logger) *LiveHandler {
	return &LiveHandler{
		hub:      hub,
		upgrader: upgrader,
		logger:   logger,
	}
}

// @Summary Live booking feed
// @Description Upgrades to a websocket that receives booking and calendar frames
// @Tags live
// @Security BearerAuth
// @Param token query string false "Access token, for clients that cannot set headers"
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *LiveHandler) Serve(c *gin.Context) {
	// The upgrader writes its own HTTP error on failure.
	if err := h.upgrader.Serve(h.hub, c.Writer, c.Request); err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err, "client_ip", c.ClientIP())
		c.Abort()
	}
}
