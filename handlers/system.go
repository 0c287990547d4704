package handlers

import (
	"net/http"

	sessionRepo "sessionplanner/database/repository/session"
	"sessionplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const debugSampleSize = 5

type SystemHandler struct {
	Sessions sessionRepo.SessionRepository
	Logger   *zap.Logger
}

// Health reports the last recorded store health.
func (h *SystemHandler) Health(c *gin.Context) {
	health := utils.GetHealthStatus()
	status := "ok"
	if !health.Mongo || !health.Redis {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"message":  "Session planner is running",
		"services": health,
	})
}

// DebugSessions returns a small sample of stored sessions.
func (h *SystemHandler) DebugSessions(c *gin.Context) {
	sessions, err := h.Sessions.Sample(c.Request.Context(), debugSampleSize)
	if err != nil {
		getLogger(c, h.Logger).Error("Failed to sample sessions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(sessions), "sessions": sessions})
}
