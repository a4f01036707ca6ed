package categoryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/internal/repositories"
	"pokereview/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepositoryInterface {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepositoryInterface) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo)
}
