package handlers

import (
	"net/http"

	"sessionplanner/models"
	"sessionplanner/services/recommendation"
	"sessionplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	Service recommendation.RecommendationService
	Logger  *zap.Logger
}

// Recommend handles POST /api/recommendations.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	resp, err := h.Service.Recommend(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRecommendation handles GET /api/recommendations/:requestId.
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	resp, err := h.Service.GetSnapshot(c.Request.Context(), c.Param("requestId"))
	if err != nil {
		respondServiceError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
