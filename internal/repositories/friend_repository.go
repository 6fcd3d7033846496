package repositories

import (
	"context"

	"gorm.io/gorm"
	"keliauk/internal/models/db_models"
)

type FriendRepository interface {
	List(ctx context.Context) ([]db_models.Friend, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) List(ctx context.Context) ([]db_models.Friend, error) {
	var friends []db_models.Friend
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}
