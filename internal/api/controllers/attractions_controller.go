package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type AttractionsController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionsController(attractionService services.AttractionServiceInterface) *AttractionsController {
	return &AttractionsController{
		attractionService: attractionService,
	}
}

func (a *AttractionsController) GetAttractionByID(c *gin.Context) {
	attractionID := c.Param("id")
	if attractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	attraction, err := a.attractionService.GetAttractionByID(c.Request.Context(), attractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attraction, "Attraction fetched successfully")
}

func (a *AttractionsController) ListAttractions(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	attractions, err := a.attractionService.ListAttractions(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}
