package attractions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
)

var Module = fx.Provide(
	provideAttractionService, provideAttractionRepo)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideAttractionService(attractionRepo repositories.AttractionRepository) services.AttractionServiceInterface {
	return services.NewAttractionService(attractionRepo)
}
