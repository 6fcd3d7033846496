package services

import (
	"context"
	"log"

	"keliauk/internal/models/db_models"
	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/utils"
)

type AttractionServiceInterface interface {
	GetAttractionByID(ctx context.Context, id string) (*response_models.Attraction, error)
	ListAttractions(ctx context.Context, page, pageSize int) ([]response_models.Attraction, error)
}

type AttractionService struct {
	attractionRepo repositories.AttractionRepository
}

func NewAttractionService(attractionRepo repositories.AttractionRepository) AttractionServiceInterface {
	return &AttractionService{
		attractionRepo: attractionRepo,
	}
}

func (a *AttractionService) GetAttractionByID(ctx context.Context, id string) (*response_models.Attraction, error) {
	attraction, err := a.attractionRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching attraction: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}

	out := toAttractionResponse(*attraction)
	return &out, nil
}

func (a *AttractionService) ListAttractions(ctx context.Context, page, pageSize int) ([]response_models.Attraction, error) {
	attractions, err := a.attractionRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing attractions: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Attraction, 0, len(attractions))
	for _, attraction := range attractions {
		out = append(out, toAttractionResponse(attraction))
	}
	return out, nil
}

func toAttractionResponse(attraction db_models.Attraction) response_models.Attraction {
	return response_models.Attraction{
		ID:          attraction.ID.String(),
		Name:        attraction.Name,
		Description: attraction.Description,
		Image:       attraction.Image,
		Latitude:    attraction.Latitude,
		Longitude:   attraction.Longitude,
		Address:     attraction.Address,
		Rating:      attraction.Rating,
		Category:    attraction.Category,
	}
}
