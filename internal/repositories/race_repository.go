package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"keliauk/internal/models/db_models"
)

type RaceRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Race, error)
	List(ctx context.Context) ([]db_models.Race, error)
	UpdateParticipants(ctx context.Context, race *db_models.Race) error
}

type raceRepository struct {
	db *gorm.DB
}

func NewRaceRepository(db *gorm.DB) RaceRepository {
	return &raceRepository{db: db}
}

func (r *raceRepository) GetByID(ctx context.Context, id string) (*db_models.Race, error) {
	var race db_models.Race
	err := r.db.WithContext(ctx).First(&race, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &race, nil
}

func (r *raceRepository) List(ctx context.Context) ([]db_models.Race, error) {
	var races []db_models.Race
	err := r.db.WithContext(ctx).Order("date ASC").Find(&races).Error
	if err != nil {
		return nil, err
	}
	return races, nil
}

func (r *raceRepository) UpdateParticipants(ctx context.Context, race *db_models.Race) error {
	return r.db.WithContext(ctx).
		Model(race).
		Update("participants", race.Participants).Error
}
