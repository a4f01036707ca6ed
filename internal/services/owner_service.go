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

type OwnerServiceInterface interface {
	ListOwners(ctx context.Context) ([]response_models.OwnerResponse, error)
	GetOwnerByID(ctx context.Context, id int) (*response_models.OwnerResponse, error)
	ListPokemonByOwner(ctx context.Context, ownerID int) ([]response_models.PokemonResponse, error)
	CreateOwner(ctx context.Context, req request_models.CreateOwnerRequest, countryID int) (*response_models.OwnerResponse, error)
	UpdateOwner(ctx context.Context, id int, req request_models.UpdateOwnerRequest, countryID int) error
	DeleteOwner(ctx context.Context, id int) error
}

type OwnerService struct {
	ownerRepo   repositories.OwnerRepositoryInterface
	countryRepo repositories.CountryRepositoryInterface
}

func NewOwnerService(
	ownerRepo repositories.OwnerRepositoryInterface,
	countryRepo repositories.CountryRepositoryInterface) OwnerServiceInterface {
	return &OwnerService{
		ownerRepo:   ownerRepo,
		countryRepo: countryRepo,
	}
}

func (s *OwnerService) ListOwners(ctx context.Context) ([]response_models.OwnerResponse, error) {
	owners, err := s.ownerRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing owners: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OwnerResponse, 0, len(owners))
	for _, owner := range owners {
		responses = append(responses, toOwnerResponse(&owner))
	}
	return responses, nil
}

func (s *OwnerService) GetOwnerByID(ctx context.Context, id int) (*response_models.OwnerResponse, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching owner %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrOwnerNotFound
	}

	response := toOwnerResponse(owner)
	return &response, nil
}

func (s *OwnerService) ListPokemonByOwner(ctx context.Context, ownerID int) ([]response_models.PokemonResponse, error) {
	exists, err := s.ownerRepo.Exists(ctx, ownerID)
	if err != nil {
		log.Printf("Error checking owner %d: %v", ownerID, err)
		return nil, utils.ErrDatabaseError
	}
	if !exists {
		return nil, utils.ErrOwnerNotFound
	}

	pokemons, err := s.ownerRepo.ListPokemonByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("Error listing pokemon for owner %d: %v", ownerID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PokemonResponse, 0, len(pokemons))
	for _, pokemon := range pokemons {
		responses = append(responses, toPokemonResponse(&pokemon))
	}
	return responses, nil
}

func (s *OwnerService) CreateOwner(ctx context.Context, req request_models.CreateOwnerRequest, countryID int) (*response_models.OwnerResponse, error) {
	existing, err := s.ownerRepo.FindByName(ctx, req.FirstName, req.LastName)
	if err != nil {
		log.Printf("Error checking owner name %q %q: %v", req.FirstName, req.LastName, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrOwnerAlreadyExists
	}

	country, err := s.countryRepo.GetByID(ctx, countryID)
	if err != nil {
		log.Printf("Error fetching country %d: %v", countryID, err)
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	owner := &db_models.Owner{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Gym:       strings.TrimSpace(req.Gym),
		CountryID: country.ID,
	}

	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		log.Printf("Error creating owner %q %q: %v", owner.FirstName, owner.LastName, err)
		return nil, utils.ErrDatabaseError
	}

	response := toOwnerResponse(owner)
	return &response, nil
}

func (s *OwnerService) UpdateOwner(ctx context.Context, id int, req request_models.UpdateOwnerRequest, countryID int) error {
	if id != req.ID {
		return utils.ErrIDMismatch
	}

	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching owner %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if owner == nil {
		return utils.ErrOwnerNotFound
	}

	existing, err := s.ownerRepo.FindByName(ctx, req.FirstName, req.LastName)
	if err != nil {
		log.Printf("Error checking owner name %q %q: %v", req.FirstName, req.LastName, err)
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != id {
		return utils.ErrOwnerAlreadyExists
	}

	country, err := s.countryRepo.GetByID(ctx, countryID)
	if err != nil {
		log.Printf("Error fetching country %d: %v", countryID, err)
		return utils.ErrDatabaseError
	}
	if country == nil {
		return utils.ErrCountryNotFound
	}

	owner.FirstName = strings.TrimSpace(req.FirstName)
	owner.LastName = strings.TrimSpace(req.LastName)
	owner.Gym = strings.TrimSpace(req.Gym)
	owner.CountryID = country.ID

	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		log.Printf("Error updating owner %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *OwnerService) DeleteOwner(ctx context.Context, id int) error {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching owner %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if owner == nil {
		return utils.ErrOwnerNotFound
	}

	if err := s.ownerRepo.Delete(ctx, owner); err != nil {
		log.Printf("Error deleting owner %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toOwnerResponse(owner *db_models.Owner) response_models.OwnerResponse {
	return response_models.OwnerResponse{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Gym:       owner.Gym,
		CountryID: owner.CountryID,
	}
}
