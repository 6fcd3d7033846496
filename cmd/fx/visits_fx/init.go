package visits_fx

import (
	"go.uber.org/fx"
	"keliauk/internal/repositories"
	"keliauk/internal/services"
)

var Module = fx.Provide(
	provideVisitService, provideUserActionStore)

func provideUserActionStore() repositories.UserActionStore {
	return repositories.NewUserActionStore()
}

func provideVisitService(actions repositories.UserActionStore, attractionRepo repositories.AttractionRepository) services.VisitServiceInterface {
	return services.NewVisitService(actions, attractionRepo)
}
