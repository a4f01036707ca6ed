package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pokereview/internal/models/db_models"
	"pokereview/pkg/utils"
)

type CountryRepositoryInterface interface {
	Exists(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*db_models.Country, error)
	FindByName(ctx context.Context, name string) (*db_models.Country, error)
	GetByOwner(ctx context.Context, ownerID int) (*db_models.Country, error)
	List(ctx context.Context) ([]db_models.Country, error)
	Create(ctx context.Context, country *db_models.Country) error
	Update(ctx context.Context, country *db_models.Country) error
	Delete(ctx context.Context, country *db_models.Country) error
}

type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepositoryInterface {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Country{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *CountryRepository) GetByID(ctx context.Context, id int) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *CountryRepository) FindByName(ctx context.Context, name string) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = ?", utils.NormalizeName(name)).
		First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *CountryRepository) GetByOwner(ctx context.Context, ownerID int) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).
		Joins("JOIN owners ON owners.country_id = countries.id").
		Where("owners.id = ?", ownerID).
		First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]db_models.Country, error) {
	var countries []db_models.Country
	err := r.db.WithContext(ctx).Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CountryRepository) Create(ctx context.Context, country *db_models.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *CountryRepository) Update(ctx context.Context, country *db_models.Country) error {
	return r.db.WithContext(ctx).Save(country).Error
}

func (r *CountryRepository) Delete(ctx context.Context, country *db_models.Country) error {
	return r.db.WithContext(ctx).Delete(country).Error
}
