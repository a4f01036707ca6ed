package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pokereview/internal/models/db_models"
	"pokereview/pkg/utils"
)

type ReviewRepositoryInterface interface {
	Exists(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*db_models.Review, error)
	FindByTitle(ctx context.Context, title string) (*db_models.Review, error)
	List(ctx context.Context) ([]db_models.Review, error)
	ListByPokemon(ctx context.Context, pokemonID int) ([]db_models.Review, error)
	ListByReviewer(ctx context.Context, reviewerID int) ([]db_models.Review, error)
	Create(ctx context.Context, review *db_models.Review) error
	Update(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, review *db_models.Review) error
	DeleteMany(ctx context.Context, reviews []db_models.Review) error
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryInterface {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// FindByTitle matches titles across all reviews, trimmed and
// case-insensitive. Titles are unique store-wide, not per pokemon.
func (r *ReviewRepository) FindByTitle(ctx context.Context, title string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(title)) = ?", utils.NormalizeName(title)).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListByPokemon(ctx context.Context, pokemonID int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).Where("pokemon_id = ?", pokemonID).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListByReviewer(ctx context.Context, reviewerID int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).Where("reviewer_id = ?", reviewerID).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Delete(review).Error
}

// DeleteMany removes the given reviews in a single statement. Used by the
// cascade paths before the owning pokemon or reviewer is deleted.
func (r *ReviewRepository) DeleteMany(ctx context.Context, reviews []db_models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&reviews).Error
}
