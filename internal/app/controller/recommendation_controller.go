package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/navjivan/navjivan-backend/internal/app/service"
	apperrors "github.com/navjivan/navjivan-backend/internal/errors"
	"github.com/navjivan/navjivan-backend/internal/middleware"
)

// RecommendationController backs the "ask the chef" modal on the site.
type RecommendationController struct {
	recommendations service.RecommendationService
}

func NewRecommendationController(recommendations service.RecommendationService) *RecommendationController {
	return &RecommendationController{recommendations: recommendations}
}

func (ctrl *RecommendationController) Recommend(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	recommendations, err := ctrl.recommendations.Recommend(&req)
	if err != nil {
		if strings.Contains(err.Error(), "not configured") {
			apperrors.RespondWithError(c, http.StatusServiceUnavailable, apperrors.AINotConfigured, "Recommendations are not available")
			return
		}
		log.Error("Recommendation request failed", err, map[string]interface{}{
			"mood": req.Mood,
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.AIRequestFailed, "Could not get recommendations right now")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
