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

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id int) (*response_models.CategoryResponse, error)
	ListPokemonByCategory(ctx context.Context, categoryID int) ([]response_models.PokemonResponse, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int, req request_models.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id int) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(&category))
	}
	return responses, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (*response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching category %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	response := toCategoryResponse(category)
	return &response, nil
}

func (s *CategoryService) ListPokemonByCategory(ctx context.Context, categoryID int) ([]response_models.PokemonResponse, error) {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		log.Printf("Error checking category %d: %v", categoryID, err)
		return nil, utils.ErrDatabaseError
	}
	if !exists {
		return nil, utils.ErrCategoryNotFound
	}

	pokemons, err := s.categoryRepo.ListPokemonByCategory(ctx, categoryID)
	if err != nil {
		log.Printf("Error listing pokemon for category %d: %v", categoryID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PokemonResponse, 0, len(pokemons))
	for _, pokemon := range pokemons {
		responses = append(responses, toPokemonResponse(&pokemon))
	}
	return responses, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	existing, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err != nil {
		log.Printf("Error checking category name %q: %v", req.Name, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCategoryAlreadyExists
	}

	category := &db_models.Category{Name: strings.TrimSpace(req.Name)}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		log.Printf("Error creating category %q: %v", category.Name, err)
		return nil, utils.ErrDatabaseError
	}

	response := toCategoryResponse(category)
	return &response, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int, req request_models.UpdateCategoryRequest) error {
	if id != req.ID {
		return utils.ErrIDMismatch
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching category %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	existing, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err != nil {
		log.Printf("Error checking category name %q: %v", req.Name, err)
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != id {
		return utils.ErrCategoryAlreadyExists
	}

	category.Name = strings.TrimSpace(req.Name)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		log.Printf("Error updating category %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching category %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	if err := s.categoryRepo.Delete(ctx, category); err != nil {
		log.Printf("Error deleting category %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toCategoryResponse(category *db_models.Category) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
