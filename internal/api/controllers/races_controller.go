package controllers

import (
	"github.com/gin-gonic/gin"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type RacesController struct {
	raceService services.RaceServiceInterface
}

func NewRacesController(raceService services.RaceServiceInterface) *RacesController {
	return &RacesController{
		raceService: raceService,
	}
}

func (r *RacesController) ListRaces(c *gin.Context) {
	races, err := r.raceService.ListRaces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, races, "Races fetched successfully")
}

func (r *RacesController) JoinRace(c *gin.Context) {
	race, err := r.raceService.JoinRace(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, race, "Užsiregistravote į renginį")
}

func (r *RacesController) LeaveRace(c *gin.Context) {
	race, err := r.raceService.LeaveRace(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, race, "Registracija atšaukta")
}
