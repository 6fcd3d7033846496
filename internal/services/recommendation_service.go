package services

import (
	"context"
	"log"
	"sort"

	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/utils"
)

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, category string, limit int) ([]response_models.Attraction, error)
}

// RecommendationService picks the top-rated attractions, optionally within a
// category. Deterministic by contract: no randomness, no external scoring.
type RecommendationService struct {
	attractionRepo repositories.AttractionRepository
}

func NewRecommendationService(attractionRepo repositories.AttractionRepository) RecommendationServiceInterface {
	return &RecommendationService{
		attractionRepo: attractionRepo,
	}
}

func (r *RecommendationService) Recommend(ctx context.Context, category string, limit int) ([]response_models.Attraction, error) {
	if limit < 1 {
		limit = 5
	}

	if category == "" {
		attractions, err := r.attractionRepo.ListByRating(ctx, limit)
		if err != nil {
			log.Printf("Error listing attractions by rating: %v", err)
			return nil, utils.ErrDatabaseError
		}
		out := make([]response_models.Attraction, 0, len(attractions))
		for _, attraction := range attractions {
			out = append(out, toAttractionResponse(attraction))
		}
		return out, nil
	}

	attractions, err := r.attractionRepo.ListByCategory(ctx, category)
	if err != nil {
		log.Printf("Error listing attractions by category: %v", err)
		return nil, utils.ErrDatabaseError
	}

	sort.SliceStable(attractions, func(i, j int) bool {
		return attractions[i].Rating > attractions[j].Rating
	})
	if len(attractions) > limit {
		attractions = attractions[:limit]
	}

	out := make([]response_models.Attraction, 0, len(attractions))
	for _, attraction := range attractions {
		out = append(out, toAttractionResponse(attraction))
	}
	return out, nil
}
