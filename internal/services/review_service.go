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

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context) ([]response_models.ReviewResponse, error)
	GetReviewByID(ctx context.Context, id int) (*response_models.ReviewResponse, error)
	ListReviewsByPokemon(ctx context.Context, pokemonID int) ([]response_models.ReviewResponse, error)
	CreateReview(ctx context.Context, req request_models.CreateReviewRequest, reviewerID, pokemonID int) (*response_models.ReviewResponse, error)
	UpdateReview(ctx context.Context, id int, req request_models.UpdateReviewRequest, reviewerID, pokemonID int) error
	DeleteReview(ctx context.Context, id int) error
}

type ReviewService struct {
	reviewRepo   repositories.ReviewRepositoryInterface
	reviewerRepo repositories.ReviewerRepositoryInterface
	pokemonRepo  repositories.PokemonRepositoryInterface
}

func NewReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	reviewerRepo repositories.ReviewerRepositoryInterface,
	pokemonRepo repositories.PokemonRepositoryInterface) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		reviewerRepo: reviewerRepo,
		pokemonRepo:  pokemonRepo,
	}
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]response_models.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(&review))
	}
	return responses, nil
}

func (s *ReviewService) GetReviewByID(ctx context.Context, id int) (*response_models.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching review %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}

	response := toReviewResponse(review)
	return &response, nil
}

func (s *ReviewService) ListReviewsByPokemon(ctx context.Context, pokemonID int) ([]response_models.ReviewResponse, error) {
	exists, err := s.pokemonRepo.Exists(ctx, pokemonID)
	if err != nil {
		log.Printf("Error checking pokemon %d: %v", pokemonID, err)
		return nil, utils.ErrDatabaseError
	}
	if !exists {
		return nil, utils.ErrPokemonNotFound
	}

	reviews, err := s.reviewRepo.ListByPokemon(ctx, pokemonID)
	if err != nil {
		log.Printf("Error listing reviews for pokemon %d: %v", pokemonID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(&review))
	}
	return responses, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, req request_models.CreateReviewRequest, reviewerID, pokemonID int) (*response_models.ReviewResponse, error) {
	existing, err := s.reviewRepo.FindByTitle(ctx, req.Title)
	if err != nil {
		log.Printf("Error checking review title %q: %v", req.Title, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrReviewAlreadyExists
	}

	reviewer, err := s.reviewerRepo.GetByID(ctx, reviewerID)
	if err != nil {
		log.Printf("Error fetching reviewer %d: %v", reviewerID, err)
		return nil, utils.ErrDatabaseError
	}
	if reviewer == nil {
		return nil, utils.ErrReviewerNotFound
	}

	pokemon, err := s.pokemonRepo.GetByID(ctx, pokemonID)
	if err != nil {
		log.Printf("Error fetching pokemon %d: %v", pokemonID, err)
		return nil, utils.ErrDatabaseError
	}
	if pokemon == nil {
		return nil, utils.ErrPokemonNotFound
	}

	review := &db_models.Review{
		Title:      strings.TrimSpace(req.Title),
		Text:       req.Text,
		Rating:     req.Rating,
		ReviewerID: reviewer.ID,
		PokemonID:  pokemon.ID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		log.Printf("Error creating review %q: %v", review.Title, err)
		return nil, utils.ErrDatabaseError
	}

	response := toReviewResponse(review)
	return &response, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id int, req request_models.UpdateReviewRequest, reviewerID, pokemonID int) error {
	if id != req.ID {
		return utils.ErrIDMismatch
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching review %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}

	existing, err := s.reviewRepo.FindByTitle(ctx, req.Title)
	if err != nil {
		log.Printf("Error checking review title %q: %v", req.Title, err)
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != id {
		return utils.ErrReviewAlreadyExists
	}

	reviewer, err := s.reviewerRepo.GetByID(ctx, reviewerID)
	if err != nil {
		log.Printf("Error fetching reviewer %d: %v", reviewerID, err)
		return utils.ErrDatabaseError
	}
	if reviewer == nil {
		return utils.ErrReviewerNotFound
	}

	pokemon, err := s.pokemonRepo.GetByID(ctx, pokemonID)
	if err != nil {
		log.Printf("Error fetching pokemon %d: %v", pokemonID, err)
		return utils.ErrDatabaseError
	}
	if pokemon == nil {
		return utils.ErrPokemonNotFound
	}

	review.Title = strings.TrimSpace(req.Title)
	review.Text = req.Text
	review.Rating = req.Rating
	review.ReviewerID = reviewer.ID
	review.PokemonID = pokemon.ID

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		log.Printf("Error updating review %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id int) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching review %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}

	if err := s.reviewRepo.Delete(ctx, review); err != nil {
		log.Printf("Error deleting review %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toReviewResponse(review *db_models.Review) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:         review.ID,
		Title:      review.Title,
		Text:       review.Text,
		Rating:     review.Rating,
		PokemonID:  review.PokemonID,
		ReviewerID: review.ReviewerID,
	}
}
