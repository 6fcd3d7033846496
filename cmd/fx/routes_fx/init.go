package routes_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
)

var Module = fx.Provide(
	provideRouteBuilderService, provideRouteRepo)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func provideRouteBuilderService(attractionRepo repositories.AttractionRepository, routeRepo repositories.RouteRepository) services.RouteBuilderServiceInterface {
	return services.NewRouteBuilderService(attractionRepo, routeRepo)
}
