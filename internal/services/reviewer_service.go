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

type ReviewerServiceInterface interface {
	ListReviewers(ctx context.Context) ([]response_models.ReviewerResponse, error)
	GetReviewerByID(ctx context.Context, id int) (*response_models.ReviewerResponse, error)
	ListReviewsByReviewer(ctx context.Context, reviewerID int) ([]response_models.ReviewResponse, error)
	CreateReviewer(ctx context.Context, req request_models.CreateReviewerRequest) (*response_models.ReviewerResponse, error)
	UpdateReviewer(ctx context.Context, id int, req request_models.UpdateReviewerRequest) error
	DeleteReviewer(ctx context.Context, id int) error
}

type ReviewerService struct {
	reviewerRepo repositories.ReviewerRepositoryInterface
	reviewRepo   repositories.ReviewRepositoryInterface
}

func NewReviewerService(
	reviewerRepo repositories.ReviewerRepositoryInterface,
	reviewRepo repositories.ReviewRepositoryInterface) ReviewerServiceInterface {
	return &ReviewerService{
		reviewerRepo: reviewerRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *ReviewerService) ListReviewers(ctx context.Context) ([]response_models.ReviewerResponse, error) {
	reviewers, err := s.reviewerRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing reviewers: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewerResponse, 0, len(reviewers))
	for _, reviewer := range reviewers {
		responses = append(responses, toReviewerResponse(&reviewer))
	}
	return responses, nil
}

func (s *ReviewerService) GetReviewerByID(ctx context.Context, id int) (*response_models.ReviewerResponse, error) {
	reviewer, err := s.reviewerRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching reviewer %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if reviewer == nil {
		return nil, utils.ErrReviewerNotFound
	}

	response := toReviewerResponse(reviewer)
	return &response, nil
}

func (s *ReviewerService) ListReviewsByReviewer(ctx context.Context, reviewerID int) ([]response_models.ReviewResponse, error) {
	exists, err := s.reviewerRepo.Exists(ctx, reviewerID)
	if err != nil {
		log.Printf("Error checking reviewer %d: %v", reviewerID, err)
		return nil, utils.ErrDatabaseError
	}
	if !exists {
		return nil, utils.ErrReviewerNotFound
	}

	reviews, err := s.reviewRepo.ListByReviewer(ctx, reviewerID)
	if err != nil {
		log.Printf("Error listing reviews for reviewer %d: %v", reviewerID, err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(&review))
	}
	return responses, nil
}

func (s *ReviewerService) CreateReviewer(ctx context.Context, req request_models.CreateReviewerRequest) (*response_models.ReviewerResponse, error) {
	existing, err := s.reviewerRepo.FindByName(ctx, req.FirstName, req.LastName)
	if err != nil {
		log.Printf("Error checking reviewer name %q %q: %v", req.FirstName, req.LastName, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrReviewerAlreadyExists
	}

	reviewer := &db_models.Reviewer{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}

	if err := s.reviewerRepo.Create(ctx, reviewer); err != nil {
		log.Printf("Error creating reviewer %q %q: %v", reviewer.FirstName, reviewer.LastName, err)
		return nil, utils.ErrDatabaseError
	}

	response := toReviewerResponse(reviewer)
	return &response, nil
}

func (s *ReviewerService) UpdateReviewer(ctx context.Context, id int, req request_models.UpdateReviewerRequest) error {
	if id != req.ID {
		return utils.ErrIDMismatch
	}

	reviewer, err := s.reviewerRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching reviewer %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if reviewer == nil {
		return utils.ErrReviewerNotFound
	}

	existing, err := s.reviewerRepo.FindByName(ctx, req.FirstName, req.LastName)
	if err != nil {
		log.Printf("Error checking reviewer name %q %q: %v", req.FirstName, req.LastName, err)
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != id {
		return utils.ErrReviewerAlreadyExists
	}

	reviewer.FirstName = strings.TrimSpace(req.FirstName)
	reviewer.LastName = strings.TrimSpace(req.LastName)

	if err := s.reviewerRepo.Update(ctx, reviewer); err != nil {
		log.Printf("Error updating reviewer %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

// DeleteReviewer removes the reviewer's reviews first. If the bulk delete
// fails the reviewer is left untouched.
func (s *ReviewerService) DeleteReviewer(ctx context.Context, id int) error {
	reviewer, err := s.reviewerRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching reviewer %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	if reviewer == nil {
		return utils.ErrReviewerNotFound
	}

	reviews, err := s.reviewRepo.ListByReviewer(ctx, id)
	if err != nil {
		log.Printf("Error listing reviews for reviewer %d: %v", id, err)
		return utils.ErrDatabaseError
	}

	if err := s.reviewRepo.DeleteMany(ctx, reviews); err != nil {
		log.Printf("Error deleting reviews for reviewer %d: %v", id, err)
		return utils.ErrDatabaseError
	}

	if err := s.reviewerRepo.Delete(ctx, reviewer); err != nil {
		log.Printf("Error deleting reviewer %d: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toReviewerResponse(reviewer *db_models.Reviewer) response_models.ReviewerResponse {
	return response_models.ReviewerResponse{
		ID:        reviewer.ID,
		FirstName: reviewer.FirstName,
		LastName:  reviewer.LastName,
	}
}
