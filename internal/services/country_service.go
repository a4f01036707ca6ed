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

type CountryServiceInterface interface {
	ListCountries(ctx context.Context) ([]response_models.CountryResponse, error)
	GetCountryByID(ctx context.Context, id int) (*response_models.CountryResponse, error)
	GetCountryByOwner(ctx context.Context, ownerID int) (*response_models.CountryResponse, error)
	CreateCountry(ctx context.Context, req request_models.CreateCountryRequest) (*response_models.CountryResponse, error)
	UpdateCountry(ctx context.Context, id int, req request_models.UpdateCountryRequest) error
	DeleteCountry(ctx context.Context, id int) error
}

type CountryService struct {
	countryRepo repositories.CountryRepositoryInterface
}

func NewCountryService(countryRepo repositories.CountryRepositoryInterface) CountryServiceInterface {
	return &CountryService{countryRepo: countryRepo}
}

func (s *CountryService) ListCountries(ctx context.Context) ([]response_models.CountryResponse, error) {
	countries, err := s.countryRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing countries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CountryResponse, 0, len(countries))
	for _, country := range countries {
		responses = append(responses, toCountryResponse(&country))
	}
	return responses, nil
}

func (s *CountryService) GetCountryByID(ctx context.Context, id int) (*response_models.CountryResponse, error) {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching country %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	response := toCountryResponse(country)
	return &response, nil
}

// GetCountryByOwner reports not-found when no country resolves for the
// owner, whether the owner is missing or simply has no country row.
func (s *CountryService) GetCountryByOwner(ctx context.Context, ownerID int) (*response_models.CountryResponse, error) {
	country, err := s.countryRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("Error fetching country for owner %d: %v", ownerID, err)
		return nil, utils.ErrDatabaseError
	}
	if country == nil {
		return nil, utils.ErrCountryNotFound
	}

	response := toCountryResponse(country)
	return &response, nil
}

func (s *CountryService) CreateCountry(ctx context.Context, req request_models.CreateCountryRequest) (*response_models.CountryResponse, error) {
	existing, err := s.countryRepo.FindByName(ctx, req.Name)
	if err != nil {
		log.Printf("Error checking country name %q: %v", req.Name, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCountryAlreadyExists
	}

	country := &db_models.Country{Name: strings.TrimSpace(req.Name)}
	if err := s.countryRepo.Create(ctx, country); err != nil {
		log.Printf("Error creating country %q: %v", country.Name, err)
		return nil, utils.ErrDatabaseError
	}

	response := toCountryResponse(country)
	return &response, nil
}

func (s *CountryService) UpdateCountry(ctx context.Context, id int, req request_models.UpdateCountryRequest) error {
	if id != req.ID {
		return utils.ErrIDMismatch
	}

	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching country %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if country == nil {
		return utils.ErrCountryNotFound
	}

	existing, err := s.countryRepo.FindByName(ctx, req.Name)
	if err != nil {
		log.Printf("Error checking country name %q: %v", req.Name, err)
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != id {
		return utils.ErrCountryAlreadyExists
	}

	country.Name = strings.TrimSpace(req.Name)
	if err := s.countryRepo.Update(ctx, country); err != nil {
		log.Printf("Error updating country %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CountryService) DeleteCountry(ctx context.Context, id int) error {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching country %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if country == nil {
		return utils.ErrCountryNotFound
	}

	if err := s.countryRepo.Delete(ctx, country); err != nil {
		log.Printf("Error deleting country %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toCountryResponse(country *db_models.Country) response_models.CountryResponse {
	return response_models.CountryResponse{
		ID:   country.ID,
		Name: country.Name,
	}
}
