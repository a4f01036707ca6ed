package countryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/internal/repositories"
	"pokereview/internal/services"
)

var Module = fx.Provide(
	provideCountryRepo, provideCountryService)

func provideCountryRepo(db *gorm.DB) repositories.CountryRepositoryInterface {
	return repositories.NewCountryRepository(db)
}

func provideCountryService(countryRepo repositories.CountryRepositoryInterface) services.CountryServiceInterface {
	return services.NewCountryService(countryRepo)
}
