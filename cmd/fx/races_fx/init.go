package races_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
)

var Module = fx.Provide(
	provideRaceService, provideRaceRepo)

func provideRaceRepo(db *gorm.DB) repositories.RaceRepository {
	return repositories.NewRaceRepository(db)
}

func provideRaceService(raceRepo repositories.RaceRepository) services.RaceServiceInterface {
	return services.NewRaceService(raceRepo)
}
