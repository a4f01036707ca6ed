package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pokereview/internal/models/db_models"
	"pokereview/pkg/utils"
)

type PokemonRepositoryInterface interface {
	Exists(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*db_models.Pokemon, error)
	FindByName(ctx context.Context, name string) (*db_models.Pokemon, error)
	List(ctx context.Context) ([]db_models.Pokemon, error)
	GetRating(ctx context.Context, id int) (float64, error)
	Create(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error
	Update(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error
	Delete(ctx context.Context, pokemon *db_models.Pokemon) error
}

type PokemonRepository struct {
	db *gorm.DB
}

func NewPokemonRepository(db *gorm.DB) PokemonRepositoryInterface {
	return &PokemonRepository{db: db}
}

func (r *PokemonRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Pokemon{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *PokemonRepository) GetByID(ctx context.Context, id int) (*db_models.Pokemon, error) {
	var pokemon db_models.Pokemon
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&pokemon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pokemon, nil
}

func (r *PokemonRepository) FindByName(ctx context.Context, name string) (*db_models.Pokemon, error) {
	var pokemon db_models.Pokemon
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = ?", utils.NormalizeName(name)).
		First(&pokemon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pokemon, nil
}

func (r *PokemonRepository) List(ctx context.Context) ([]db_models.Pokemon, error) {
	var pokemons []db_models.Pokemon
	err := r.db.WithContext(ctx).Find(&pokemons).Error
	if err != nil {
		return nil, err
	}
	return pokemons, nil
}

// GetRating returns the average rating across the pokemon's reviews, 0 when
// it has none.
func (r *PokemonRepository) GetRating(ctx context.Context, id int) (float64, error) {
	var rating float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("pokemon_id = ?", id).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&rating).Error
	return rating, err
}

func (r *PokemonRepository) Create(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(pokemon).Error; err != nil {
			return err
		}
		if err := tx.Model(pokemon).Association("Owners").Append(owner); err != nil {
			return err
		}
		return tx.Model(pokemon).Association("Categories").Append(category)
	})
}

func (r *PokemonRepository) Update(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(pokemon).Error; err != nil {
			return err
		}
		if err := tx.Model(pokemon).Association("Owners").Replace(owner); err != nil {
			return err
		}
		return tx.Model(pokemon).Association("Categories").Replace(category)
	})
}

func (r *PokemonRepository) Delete(ctx context.Context, pokemon *db_models.Pokemon) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(pokemon).Association("Owners").Clear(); err != nil {
			return err
		}
		if err := tx.Model(pokemon).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(pokemon).Error
	})
}
