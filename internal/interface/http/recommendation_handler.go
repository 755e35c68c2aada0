package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heelmeals/nutritrack/pkg/response"
)

// RecommendationHandler serves a fixed payload. Nothing is computed from the
// user's stored preferences; the JSON keys are part of the frontend contract.
type RecommendationHandler struct{}

func NewRecommendationHandler() *RecommendationHandler {
	return &RecommendationHandler{}
}

type recommendation struct {
	Message        string   `json:"message"`
	SuggestedMeals []string `json:"suggestedMeals"`
}

var staticRecommendation = recommendation{
	Message: "Based on your preferences and goals, we recommend increasing your protein intake and reducing carbohydrates.",
	SuggestedMeals: []string{
		"Grilled chicken salad",
		"Salmon with roasted vegetables",
		"Greek yogurt with berries and nuts",
	},
}

// Get GET /api/recommendations
func (h *RecommendationHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, staticRecommendation, "recommendations", nil)
}
