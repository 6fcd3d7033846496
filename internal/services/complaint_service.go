package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"keliauk/internal/models/db_models"
	"keliauk/internal/models/request_models"
	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/utils"
)

var complaintStatuses = []string{
	db_models.ComplaintStatusSubmitted,
	db_models.ComplaintStatusReceived,
	db_models.ComplaintStatusReviewed,
	db_models.ComplaintStatusResolved,
	db_models.ComplaintStatusRejected,
}

type ComplaintServiceInterface interface {
	CreateComplaint(ctx context.Context, accountID string, request request_models.CreateComplaintRequest) (*response_models.Complaint, error)
	ListComplaints(ctx context.Context, accountID string) ([]response_models.Complaint, error)
	ChangeStatus(ctx context.Context, accountID, complaintID, status string) error
	DeleteComplaint(ctx context.Context, accountID, complaintID string) error
}

type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
}

func NewComplaintService(complaintRepo repositories.ComplaintRepository) ComplaintServiceInterface {
	return &ComplaintService{
		complaintRepo: complaintRepo,
	}
}

func (c *ComplaintService) CreateComplaint(ctx context.Context, accountID string, request request_models.CreateComplaintRequest) (*response_models.Complaint, error) {
	account, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	complaint := &db_models.Complaint{
		AccountID: account,
		Subject:   request.Subject,
		Category:  request.Category,
		Message:   request.Message,
		Status:    db_models.ComplaintStatusSubmitted,
	}
	if err := c.complaintRepo.Insert(ctx, complaint); err != nil {
		log.Printf("Error creating complaint: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := toComplaintResponse(*complaint)
	return &out, nil
}

func (c *ComplaintService) ListComplaints(ctx context.Context, accountID string) ([]response_models.Complaint, error) {
	complaints, err := c.complaintRepo.ListByAccount(ctx, accountID)
	if err != nil {
		log.Printf("Error listing complaints: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Complaint, 0, len(complaints))
	for _, complaint := range complaints {
		out = append(out, toComplaintResponse(complaint))
	}
	return out, nil
}

func (c *ComplaintService) ChangeStatus(ctx context.Context, accountID, complaintID, status string) error {
	if indexOf(complaintStatuses, status) < 0 {
		return utils.ErrInvalidInput
	}
	if err := c.checkComplaintOwner(ctx, accountID, complaintID); err != nil {
		return err
	}
	if err := c.complaintRepo.UpdateStatus(ctx, complaintID, status); err != nil {
		log.Printf("Error updating complaint status: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ComplaintService) DeleteComplaint(ctx context.Context, accountID, complaintID string) error {
	if err := c.checkComplaintOwner(ctx, accountID, complaintID); err != nil {
		return err
	}
	if err := c.complaintRepo.Delete(ctx, complaintID); err != nil {
		log.Printf("Error deleting complaint: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ComplaintService) checkComplaintOwner(ctx context.Context, accountID, complaintID string) error {
	complaint, err := c.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		log.Printf("Error fetching complaint: %v", err)
		return utils.ErrDatabaseError
	}
	if complaint == nil || complaint.AccountID.String() != accountID {
		return utils.ErrComplaintNotFound
	}
	return nil
}

func toComplaintResponse(complaint db_models.Complaint) response_models.Complaint {
	return response_models.Complaint{
		ID:       complaint.ID.String(),
		Subject:  complaint.Subject,
		Category: complaint.Category,
		Message:  complaint.Message,
		Status:   complaint.Status,
		Date:     utils.FormatDateLT(utils.FromUnixSecondsLT(complaint.CreatedAt)),
	}
}
