package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pokereview/internal/models/db_models"
	"pokereview/pkg/utils"
)

type CategoryRepositoryInterface interface {
	Exists(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
	List(ctx context.Context) ([]db_models.Category, error)
	ListPokemonByCategory(ctx context.Context, categoryID int) ([]db_models.Pokemon, error)
	Create(ctx context.Context, category *db_models.Category) error
	Update(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, category *db_models.Category) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Category{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = ?", utils.NormalizeName(name)).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) ListPokemonByCategory(ctx context.Context, categoryID int) ([]db_models.Pokemon, error) {
	var pokemons []db_models.Pokemon
	err := r.db.WithContext(ctx).
		Joins("JOIN pokemon_categories ON pokemon_categories.pokemon_id = pokemons.id").
		Where("pokemon_categories.category_id = ?", categoryID).
		Find(&pokemons).Error
	if err != nil {
		return nil, err
	}
	return pokemons, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(category).Association("Pokemons").Clear(); err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
}
