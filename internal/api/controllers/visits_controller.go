package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"keliauk/internal/models/request_models"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type VisitsController struct {
	visitService services.VisitServiceInterface
}

func NewVisitsController(visitService services.VisitServiceInterface) *VisitsController {
	return &VisitsController{
		visitService: visitService,
	}
}

func (v *VisitsController) RegisterVisit(c *gin.Context) {
	attractionID := c.Param("id")
	if attractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	info, err := v.visitService.RegisterVisit(c.Request.Context(), attractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Apsilankymas užregistruotas")
}

func (v *VisitsController) GetVisitInfo(c *gin.Context) {
	attractionID := c.Param("id")
	if attractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	info, err := v.visitService.GetVisitInfo(c.Request.Context(), attractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Visit info fetched successfully")
}

func (v *VisitsController) AddReview(c *gin.Context) {
	attractionID := c.Param("id")
	if attractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	var request request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := v.visitService.AddReview(c.Request.Context(), attractionID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Įvertinimas išsaugotas")
}

func (v *VisitsController) GetReviews(c *gin.Context) {
	attractionID := c.Param("id")
	if attractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	reviews, err := v.visitService.GetReviews(c.Request.Context(), attractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (v *VisitsController) UploadImages(c *gin.Context) {
	attractionID := c.Param("id")
	if attractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	var request request_models.UploadImagesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	images, err := v.visitService.AddImages(c.Request.Context(), attractionID, request.ImageURLs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, images, "Nuotraukos įkeltos")
}

func (v *VisitsController) GetImages(c *gin.Context) {
	attractionID := c.Param("id")
	if attractionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	images, err := v.visitService.GetImages(c.Request.Context(), attractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, images, "Images fetched successfully")
}
