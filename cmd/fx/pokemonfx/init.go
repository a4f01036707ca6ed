package pokemonfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/internal/repositories"
	"pokereview/internal/services"
)

var Module = fx.Provide(
	providePokemonRepo, providePokemonService)

func providePokemonRepo(db *gorm.DB) repositories.PokemonRepositoryInterface {
	return repositories.NewPokemonRepository(db)
}

func providePokemonService(
	pokemonRepo repositories.PokemonRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	reviewRepo repositories.ReviewRepositoryInterface) services.PokemonServiceInterface {
	return services.NewPokemonService(pokemonRepo, ownerRepo, categoryRepo, reviewRepo)
}
