package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type RecommendationsController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationsController(recommendationService services.RecommendationServiceInterface) *RecommendationsController {
	return &RecommendationsController{
		recommendationService: recommendationService,
	}
}

func (r *RecommendationsController) Recommend(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit < 1 {
		utils.RespondError(c, 400, "Invalid limit")
		return
	}

	attractions, err := r.recommendationService.Recommend(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "Recommendations fetched successfully")
}
