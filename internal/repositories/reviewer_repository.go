package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pokereview/internal/models/db_models"
	"pokereview/pkg/utils"
)

type ReviewerRepositoryInterface interface {
	Exists(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*db_models.Reviewer, error)
	FindByName(ctx context.Context, firstName, lastName string) (*db_models.Reviewer, error)
	List(ctx context.Context) ([]db_models.Reviewer, error)
	Create(ctx context.Context, reviewer *db_models.Reviewer) error
	Update(ctx context.Context, reviewer *db_models.Reviewer) error
	Delete(ctx context.Context, reviewer *db_models.Reviewer) error
}

type ReviewerRepository struct {
	db *gorm.DB
}

func NewReviewerRepository(db *gorm.DB) ReviewerRepositoryInterface {
	return &ReviewerRepository{db: db}
}

func (r *ReviewerRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Reviewer{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewerRepository) GetByID(ctx context.Context, id int) (*db_models.Reviewer, error) {
	var reviewer db_models.Reviewer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reviewer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reviewer, nil
}

func (r *ReviewerRepository) FindByName(ctx context.Context, firstName, lastName string) (*db_models.Reviewer, error) {
	var reviewer db_models.Reviewer
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(last_name)) = ?", utils.NormalizeName(lastName)).
		Where("LOWER(TRIM(first_name)) = ?", utils.NormalizeName(firstName)).
		First(&reviewer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reviewer, nil
}

func (r *ReviewerRepository) List(ctx context.Context) ([]db_models.Reviewer, error) {
	var reviewers []db_models.Reviewer
	err := r.db.WithContext(ctx).Find(&reviewers).Error
	if err != nil {
		return nil, err
	}
	return reviewers, nil
}

func (r *ReviewerRepository) Create(ctx context.Context, reviewer *db_models.Reviewer) error {
	return r.db.WithContext(ctx).Create(reviewer).Error
}

func (r *ReviewerRepository) Update(ctx context.Context, reviewer *db_models.Reviewer) error {
	return r.db.WithContext(ctx).Save(reviewer).Error
}

func (r *ReviewerRepository) Delete(ctx context.Context, reviewer *db_models.Reviewer) error {
	return r.db.WithContext(ctx).Delete(reviewer).Error
}
