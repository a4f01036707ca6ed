package ownerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/internal/repositories"
	"pokereview/internal/services"
)

var Module = fx.Provide(
	provideOwnerRepo, provideOwnerService)

func provideOwnerRepo(db *gorm.DB) repositories.OwnerRepositoryInterface {
	return repositories.NewOwnerRepository(db)
}

func provideOwnerService(
	ownerRepo repositories.OwnerRepositoryInterface,
	countryRepo repositories.CountryRepositoryInterface) services.OwnerServiceInterface {
	return services.NewOwnerService(ownerRepo, countryRepo)
}
