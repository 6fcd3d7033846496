package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"keliauk/internal/models/request_models"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type FortuneController struct {
	fortuneService services.FortuneServiceInterface
}

func NewFortuneController(fortuneService services.FortuneServiceInterface) *FortuneController {
	return &FortuneController{
		fortuneService: fortuneService,
	}
}

func (f *FortuneController) StartScan(c *gin.Context) {
	session := f.fortuneService.StartScan()
	utils.RespondSuccess(c, session, "Vyksta skenavimas")
}

func (f *FortuneController) GetScan(c *gin.Context) {
	session, err := f.fortuneService.GetScan(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Scan session fetched successfully")
}

func (f *FortuneController) Predict(c *gin.Context) {
	var request request_models.FortunePredictRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	prediction, err := f.fortuneService.Predict(c.Request.Context(), c.Param("sessionId"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prediction, "Būrimas atliktas")
}

func (f *FortuneController) Cancel(c *gin.Context) {
	f.fortuneService.Cancel(c.Param("sessionId"))
	utils.RespondSuccess(c, nil, "Scan session cancelled")
}
