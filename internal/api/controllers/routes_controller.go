package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"keliauk/internal/models/request_models"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type RoutesController struct {
	routeService services.RouteBuilderServiceInterface
}

func NewRoutesController(routeService services.RouteBuilderServiceInterface) *RoutesController {
	return &RoutesController{
		routeService: routeService,
	}
}

func (r *RoutesController) StartSession(c *gin.Context) {
	session := r.routeService.StartSession()
	utils.RespondSuccess(c, session, "Route session started")
}

func (r *RoutesController) GetSession(c *gin.Context) {
	session, err := r.routeService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Route session fetched successfully")
}

func (r *RoutesController) AddDestination(c *gin.Context) {
	var request request_models.RouteDestinationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := r.routeService.AddDestination(c.Request.Context(), c.Param("sessionId"), request.AttractionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Destination added")
}

func (r *RoutesController) RemoveDestination(c *gin.Context) {
	session, err := r.routeService.RemoveDestination(c.Param("sessionId"), c.Param("attractionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Destination removed")
}

func (r *RoutesController) Calculate(c *gin.Context) {
	session, err := r.routeService.Calculate(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "Maršrutas sukurtas")
}

func (r *RoutesController) Save(c *gin.Context) {
	var request request_models.SaveRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	route, err := r.routeService.Save(c.Request.Context(), c.Param("sessionId"), c.GetString("user_id"), request.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, route, "Maršrutas išsaugotas")
}

func (r *RoutesController) Cancel(c *gin.Context) {
	r.routeService.Cancel(c.Param("sessionId"))
	utils.RespondSuccess(c, nil, "Route session cancelled")
}

func (r *RoutesController) ListSavedRoutes(c *gin.Context) {
	routes, err := r.routeService.ListSavedRoutes(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, routes, "Routes fetched successfully")
}

func (r *RoutesController) RenameSavedRoute(c *gin.Context) {
	var request request_models.SaveRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := r.routeService.RenameSavedRoute(c.Request.Context(), c.GetString("user_id"), c.Param("routeId"), request.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Route renamed")
}

func (r *RoutesController) DeleteSavedRoute(c *gin.Context) {
	err := r.routeService.DeleteSavedRoute(c.Request.Context(), c.GetString("user_id"), c.Param("routeId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Route deleted")
}
