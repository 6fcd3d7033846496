package request_models

type CreateComplaintRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Category string `json:"category" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

type ChangeComplaintStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
