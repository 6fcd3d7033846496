package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"keliauk/internal/models/db_models"
)

type AttractionRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Attraction, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error)
	ListAll(ctx context.Context) ([]db_models.Attraction, error)
	ListByCategory(ctx context.Context, category string) ([]db_models.Attraction, error)
	ListByRating(ctx context.Context, limit int) ([]db_models.Attraction, error)
	Count(ctx context.Context) (int64, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

// Read helpers return a default value + nil error when no rows are found.

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).First(&attraction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

// ListAll returns every attraction in insertion order. The fortune formula
// indexes into this list, so the ordering must be stable.
func (r *attractionRepository) ListAll(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByCategory(ctx context.Context, category string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at ASC").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByRating(ctx context.Context, limit int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Limit(limit).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Attraction{}).Count(&count).Error
	return count, err
}
