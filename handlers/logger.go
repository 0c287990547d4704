package handlers

import (
	"net/http"

	"sessionplanner/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the given one.
func getLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	if fallback != nil {
		return fallback
	}
	return zap.L()
}

// respondServiceError maps a service error onto its HTTP status and body.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	se := services.AsServiceError(err)
	switch se.Kind {
	case services.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": se.Message})
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": se.Message})
	case services.KindConflict:
		body := gin.H{"error": se.Message}
		if len(se.UnavailableSessions) > 0 {
			body["unavailable_sessions"] = se.UnavailableSessions
		}
		if len(se.Conflicts) > 0 {
			body["conflicts"] = se.Conflicts
		}
		c.JSON(http.StatusConflict, body)
	default:
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": se.Message})
	}
}
