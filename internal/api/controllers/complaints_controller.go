package controllers

import (
	"github.com/gin-gonic/gin"
	"keliauk/internal/models/request_models"
	"keliauk/internal/services"
	"keliauk/pkg/utils"
)

type ComplaintsController struct {
	complaintService services.ComplaintServiceInterface
}

func NewComplaintsController(complaintService services.ComplaintServiceInterface) *ComplaintsController {
	return &ComplaintsController{
		complaintService: complaintService,
	}
}

func (cc *ComplaintsController) CreateComplaint(c *gin.Context) {
	var request request_models.CreateComplaintRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, 400, "Invalid request body")
		return
	}

	complaint, err := cc.complaintService.CreateComplaint(c.Request.Context(), c.GetString("user_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, complaint, "Skundas pateiktas")
}

func (cc *ComplaintsController) ListComplaints(c *gin.Context) {
	complaints, err := cc.complaintService.ListComplaints(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, complaints, "Complaints fetched successfully")
}

func (cc *ComplaintsController) ChangeStatus(c *gin.Context) {
	var request request_models.ChangeComplaintStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, 400, "Invalid request body")
		return
	}

	err := cc.complaintService.ChangeStatus(c.Request.Context(), c.GetString("user_id"), c.Param("id"), request.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Skundo būsena atnaujinta")
}

func (cc *ComplaintsController) DeleteComplaint(c *gin.Context) {
	err := cc.complaintService.DeleteComplaint(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Skundas ištrintas")
}
