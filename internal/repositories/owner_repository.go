package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pokereview/internal/models/db_models"
	"pokereview/pkg/utils"
)

type OwnerRepositoryInterface interface {
	Exists(ctx context.Context, id int) (bool, error)
	GetByID(ctx context.Context, id int) (*db_models.Owner, error)
	FindByName(ctx context.Context, firstName, lastName string) (*db_models.Owner, error)
	List(ctx context.Context) ([]db_models.Owner, error)
	ListPokemonByOwner(ctx context.Context, ownerID int) ([]db_models.Pokemon, error)
	Create(ctx context.Context, owner *db_models.Owner) error
	Update(ctx context.Context, owner *db_models.Owner) error
	Delete(ctx context.Context, owner *db_models.Owner) error
}

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) OwnerRepositoryInterface {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Owner{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *OwnerRepository) GetByID(ctx context.Context, id int) (*db_models.Owner, error) {
	var owner db_models.Owner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

// FindByName matches on last name first, then disambiguates by first name.
// Both parts are compared trimmed and case-insensitively.
func (r *OwnerRepository) FindByName(ctx context.Context, firstName, lastName string) (*db_models.Owner, error) {
	var owner db_models.Owner
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(last_name)) = ?", utils.NormalizeName(lastName)).
		Where("LOWER(TRIM(first_name)) = ?", utils.NormalizeName(firstName)).
		First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerRepository) List(ctx context.Context) ([]db_models.Owner, error) {
	var owners []db_models.Owner
	err := r.db.WithContext(ctx).Find(&owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *OwnerRepository) ListPokemonByOwner(ctx context.Context, ownerID int) ([]db_models.Pokemon, error) {
	var pokemons []db_models.Pokemon
	err := r.db.WithContext(ctx).
		Joins("JOIN pokemon_owners ON pokemon_owners.pokemon_id = pokemons.id").
		Where("pokemon_owners.owner_id = ?", ownerID).
		Find(&pokemons).Error
	if err != nil {
		return nil, err
	}
	return pokemons, nil
}

func (r *OwnerRepository) Create(ctx context.Context, owner *db_models.Owner) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(owner).Error
}

func (r *OwnerRepository) Update(ctx context.Context, owner *db_models.Owner) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(owner).Error
}

func (r *OwnerRepository) Delete(ctx context.Context, owner *db_models.Owner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(owner).Association("Pokemons").Clear(); err != nil {
			return err
		}
		return tx.Delete(owner).Error
	})
}
