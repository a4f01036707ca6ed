package controllersfx

import (
	"go.uber.org/fx"

	"pokereview/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPokemonController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewCountryController),
	fx.Provide(controllers.NewOwnerController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewReviewerController))
