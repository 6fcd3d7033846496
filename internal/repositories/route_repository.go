package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"keliauk/internal/models/db_models"
)

type RouteRepository interface {
	Insert(ctx context.Context, route *db_models.SavedRoute) error
	ListByAccount(ctx context.Context, accountID string) ([]db_models.SavedRoute, error)
	GetByID(ctx context.Context, id string) (*db_models.SavedRoute, error)
	Rename(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) Insert(ctx context.Context, route *db_models.SavedRoute) error {
	// Points are inserted through the association in the same transaction.
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *routeRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.SavedRoute, error) {
	var routes []db_models.SavedRoute
	err := r.db.WithContext(ctx).
		Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_points.position ASC")
		}).
		Preload("Points.Attraction").
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id string) (*db_models.SavedRoute, error) {
	var route db_models.SavedRoute
	err := r.db.WithContext(ctx).
		Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_points.position ASC")
		}).
		Preload("Points.Attraction").
		First(&route, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

func (r *routeRepository) Rename(ctx context.Context, id string, name string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.SavedRoute{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.RoutePoint{}, "route_id = ?", id).Error; err != nil {
			return err
		}
		err := tx.Delete(&db_models.SavedRoute{}, "id = ?", id).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}
