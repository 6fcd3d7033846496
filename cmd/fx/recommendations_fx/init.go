package recommendations_fx

import (
	"go.uber.org/fx"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
)

var Module = fx.Provide(provideRecommendationService)

func provideRecommendationService(attractionRepo repositories.AttractionRepository) services.RecommendationServiceInterface {
	return services.NewRecommendationService(attractionRepo)
}
