package controllers_fx

import (
	"go.uber.org/fx"
	"keliauk/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAttractionsController),
	fx.Provide(controllers.NewVisitsController),
	fx.Provide(controllers.NewRoutesController),
	fx.Provide(controllers.NewFortuneController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewRacesController),
	fx.Provide(controllers.NewFriendsController),
	fx.Provide(controllers.NewComplaintsController),
	fx.Provide(controllers.NewRecommendationsController))
