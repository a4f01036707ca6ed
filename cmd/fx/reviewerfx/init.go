package reviewerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/internal/repositories"
	"pokereview/internal/services"
)

var Module = fx.Provide(
	provideReviewerRepo, provideReviewerService)

func provideReviewerRepo(db *gorm.DB) repositories.ReviewerRepositoryInterface {
	return repositories.NewReviewerRepository(db)
}

func provideReviewerService(
	reviewerRepo repositories.ReviewerRepositoryInterface,
	reviewRepo repositories.ReviewRepositoryInterface) services.ReviewerServiceInterface {
	return services.NewReviewerService(reviewerRepo, reviewRepo)
}
