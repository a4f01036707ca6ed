package reviewfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/internal/repositories"
	"pokereview/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	reviewerRepo repositories.ReviewerRepositoryInterface,
	pokemonRepo repositories.PokemonRepositoryInterface) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, reviewerRepo, pokemonRepo)
}
