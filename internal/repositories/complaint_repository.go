package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"keliauk/internal/models/db_models"
)

type ComplaintRepository interface {
	Insert(ctx context.Context, complaint *db_models.Complaint) error
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Complaint, error)
	GetByID(ctx context.Context, id string) (*db_models.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type complaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Insert(ctx context.Context, complaint *db_models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Complaint, error) {
	var complaints []db_models.Complaint
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*db_models.Complaint, error) {
	var complaint db_models.Complaint
	err := r.db.WithContext(ctx).First(&complaint, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Complaint{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *complaintRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Complaint{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
