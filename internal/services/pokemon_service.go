package services

import (
	"context"
	"log"
	"strings"

	"pokereview/internal/models/db_models"
	"pokereview/internal/models/request_models"
	"pokereview/internal/models/response_models"
	"pokereview/internal/repositories"
	"pokereview/pkg/utils"
)

type PokemonServiceInterface interface {
	ListPokemon(ctx context.Context) ([]response_models.PokemonResponse, error)
	GetPokemonByID(ctx context.Context, id int) (*response_models.PokemonResponse, error)
	GetPokemonRating(ctx context.Context, id int) (*response_models.RatingResponse, error)
	CreatePokemon(ctx context.Context, req request_models.CreatePokemonRequest, ownerID, categoryID int) (*response_models.PokemonResponse, error)
	UpdatePokemon(ctx context.Context, id int, req request_models.UpdatePokemonRequest, ownerID, categoryID int) error
	DeletePokemon(ctx context.Context, id int) error
}

type PokemonService struct {
	pokemonRepo  repositories.PokemonRepositoryInterface
	ownerRepo    repositories.OwnerRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	reviewRepo   repositories.ReviewRepositoryInterface
}

func NewPokemonService(
	pokemonRepo repositories.PokemonRepositoryInterface,
	ownerRepo repositories.OwnerRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	reviewRepo repositories.ReviewRepositoryInterface) PokemonServiceInterface {
	return &PokemonService{
		pokemonRepo:  pokemonRepo,
		ownerRepo:    ownerRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *PokemonService) ListPokemon(ctx context.Context) ([]response_models.PokemonResponse, error) {
	pokemons, err := s.pokemonRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing pokemon: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PokemonResponse, 0, len(pokemons))
	for _, pokemon := range pokemons {
		responses = append(responses, toPokemonResponse(&pokemon))
	}
	return responses, nil
}

func (s *PokemonService) GetPokemonByID(ctx context.Context, id int) (*response_models.PokemonResponse, error) {
	pokemon, err := s.pokemonRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching pokemon %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if pokemon == nil {
		return nil, utils.ErrPokemonNotFound
	}

	response := toPokemonResponse(pokemon)
	return &response, nil
}

func (s *PokemonService) GetPokemonRating(ctx context.Context, id int) (*response_models.RatingResponse, error) {
	exists, err := s.pokemonRepo.Exists(ctx, id)
	if err != nil {
		log.Printf("Error checking pokemon %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if !exists {
		return nil, utils.ErrPokemonNotFound
	}

	rating, err := s.pokemonRepo.GetRating(ctx, id)
	if err != nil {
		log.Printf("Error fetching rating for pokemon %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RatingResponse{PokemonID: id, Rating: rating}, nil
}

func (s *PokemonService) CreatePokemon(ctx context.Context, req request_models.CreatePokemonRequest, ownerID, categoryID int) (*response_models.PokemonResponse, error) {
	existing, err := s.pokemonRepo.FindByName(ctx, req.Name)
	if err != nil {
		log.Printf("Error checking pokemon name %q: %v", req.Name, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPokemonAlreadyExists
	}

	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		log.Printf("Error fetching owner %d: %v", ownerID, err)
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrOwnerNotFound
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		log.Printf("Error fetching category %d: %v", categoryID, err)
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	pokemon := &db_models.Pokemon{
		Name:      strings.TrimSpace(req.Name),
		BirthDate: req.BirthDate,
	}

	if err := s.pokemonRepo.Create(ctx, pokemon, owner, category); err != nil {
		log.Printf("Error creating pokemon %q: %v", pokemon.Name, err)
		return nil, utils.ErrDatabaseError
	}

	response := toPokemonResponse(pokemon)
	return &response, nil
}

func (s *PokemonService) UpdatePokemon(ctx context.Context, id int, req request_models.UpdatePokemonRequest, ownerID, categoryID int) error {
	if id != req.ID {
		return utils.ErrIDMismatch
	}

	pokemon, err := s.pokemonRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching pokemon %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if pokemon == nil {
		return utils.ErrPokemonNotFound
	}

	// A name collision with the pokemon being updated is not a conflict.
	existing, err := s.pokemonRepo.FindByName(ctx, req.Name)
	if err != nil {
		log.Printf("Error checking pokemon name %q: %v", req.Name, err)
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != id {
		return utils.ErrPokemonAlreadyExists
	}

	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		log.Printf("Error fetching owner %d: %v", ownerID, err)
		return utils.ErrDatabaseError
	}
	if owner == nil {
		return utils.ErrOwnerNotFound
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		log.Printf("Error fetching category %d: %v", categoryID, err)
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	pokemon.Name = strings.TrimSpace(req.Name)
	pokemon.BirthDate = req.BirthDate

	if err := s.pokemonRepo.Update(ctx, pokemon, owner, category); err != nil {
		log.Printf("Error updating pokemon %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

// DeletePokemon removes the pokemon's reviews first. If the bulk delete
// fails the pokemon is left untouched.
func (s *PokemonService) DeletePokemon(ctx context.Context, id int) error {
	pokemon, err := s.pokemonRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching pokemon %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if pokemon == nil {
		return utils.ErrPokemonNotFound
	}

	reviews, err := s.reviewRepo.ListByPokemon(ctx, id)
	if err != nil {
		log.Printf("Error listing reviews for pokemon %d: %v", id, err)
		return utils.ErrDatabaseError
	}

	if err := s.reviewRepo.DeleteMany(ctx, reviews); err != nil {
		log.Printf("Error deleting reviews for pokemon %d: %v", id, err)
		return utils.ErrDatabaseError
	}

	if err := s.pokemonRepo.Delete(ctx, pokemon); err != nil {
		log.Printf("Error deleting pokemon %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toPokemonResponse(pokemon *db_models.Pokemon) response_models.PokemonResponse {
	return response_models.PokemonResponse{
		ID:        pokemon.ID,
		Name:      pokemon.Name,
		BirthDate: pokemon.BirthDate,
	}
}
