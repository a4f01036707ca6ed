package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokereview/internal/models/db_models"
	"pokereview/internal/models/request_models"
	"pokereview/pkg/utils"
)

func pokemonWithID(id int, name string) *db_models.Pokemon {
	pokemon := &db_models.Pokemon{Name: name}
	pokemon.ID = id
	return pokemon
}

func ownerWithID(id int) *db_models.Owner {
	owner := &db_models.Owner{FirstName: "Jack", LastName: "London"}
	owner.ID = id
	return owner
}

func categoryWithID(id int, name string) *db_models.Category {
	category := &db_models.Category{Name: name}
	category.ID = id
	return category
}

func TestCreatePokemonDuplicateName(t *testing.T) {
	ctx := context.Background()
	created := false

	pokemonRepo := &pokemonRepoMock{
		findByNameFn: func(_ context.Context, name string) (*db_models.Pokemon, error) {
			return pokemonWithID(7, "Pikachu"), nil
		},
		createFn: func(_ context.Context, _ *db_models.Pokemon, _ *db_models.Owner, _ *db_models.Category) error {
			created = true
			return nil
		},
	}
	svc := NewPokemonService(pokemonRepo, &ownerRepoMock{}, &categoryRepoMock{}, &reviewRepoMock{})

	// Any case/whitespace variant of an existing name is a conflict.
	_, err := svc.CreatePokemon(ctx, request_models.CreatePokemonRequest{Name: "  PIKACHU "}, 1, 1)
	assert.ErrorIs(t, err, utils.ErrPokemonAlreadyExists)
	assert.False(t, created, "conflicting create must not write")
}

func TestCreatePokemonMissingForeignKeys(t *testing.T) {
	ctx := context.Background()
	req := request_models.CreatePokemonRequest{Name: "Pikachu"}

	svc := NewPokemonService(&pokemonRepoMock{}, &ownerRepoMock{}, &categoryRepoMock{}, &reviewRepoMock{})
	_, err := svc.CreatePokemon(ctx, req, 99, 1)
	assert.ErrorIs(t, err, utils.ErrOwnerNotFound)

	ownerRepo := &ownerRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Owner, error) {
			return ownerWithID(id), nil
		},
	}
	svc = NewPokemonService(&pokemonRepoMock{}, ownerRepo, &categoryRepoMock{}, &reviewRepoMock{})
	_, err = svc.CreatePokemon(ctx, req, 1, 99)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestCreatePokemonTrimsName(t *testing.T) {
	ctx := context.Background()
	birthDate := time.Date(1903, time.January, 1, 0, 0, 0, 0, time.UTC)

	var createdPokemon *db_models.Pokemon
	pokemonRepo := &pokemonRepoMock{
		createFn: func(_ context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error {
			pokemon.ID = 42
			createdPokemon = pokemon
			return nil
		},
	}
	ownerRepo := &ownerRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Owner, error) {
			return ownerWithID(id), nil
		},
	}
	categoryRepo := &categoryRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Category, error) {
			return categoryWithID(id, "Electric"), nil
		},
	}
	svc := NewPokemonService(pokemonRepo, ownerRepo, categoryRepo, &reviewRepoMock{})

	resp, err := svc.CreatePokemon(ctx, request_models.CreatePokemonRequest{Name: "  Pikachu ", BirthDate: birthDate}, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, createdPokemon)
	assert.Equal(t, "Pikachu", createdPokemon.Name)
	assert.Equal(t, 42, resp.ID)
	assert.Equal(t, "Pikachu", resp.Name)
	assert.Equal(t, birthDate, resp.BirthDate)
}

func TestUpdatePokemonIDMismatch(t *testing.T) {
	svc := NewPokemonService(&pokemonRepoMock{}, &ownerRepoMock{}, &categoryRepoMock{}, &reviewRepoMock{})

	err := svc.UpdatePokemon(context.Background(), 1, request_models.UpdatePokemonRequest{ID: 2, Name: "Pikachu"}, 1, 1)
	assert.ErrorIs(t, err, utils.ErrIDMismatch)
}

func TestUpdatePokemonOwnNameIsNotConflict(t *testing.T) {
	ctx := context.Background()

	pokemonRepo := &pokemonRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Pokemon, error) {
			return pokemonWithID(id, "Pikachu"), nil
		},
		findByNameFn: func(_ context.Context, name string) (*db_models.Pokemon, error) {
			return pokemonWithID(5, "Pikachu"), nil
		},
	}
	ownerRepo := &ownerRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Owner, error) {
			return ownerWithID(id), nil
		},
	}
	categoryRepo := &categoryRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Category, error) {
			return categoryWithID(id, "Electric"), nil
		},
	}
	svc := NewPokemonService(pokemonRepo, ownerRepo, categoryRepo, &reviewRepoMock{})

	err := svc.UpdatePokemon(ctx, 5, request_models.UpdatePokemonRequest{ID: 5, Name: "Pikachu"}, 1, 1)
	assert.NoError(t, err)

	// Same name under a different id is still a conflict.
	err = svc.UpdatePokemon(ctx, 5, request_models.UpdatePokemonRequest{ID: 5, Name: "pikachu"}, 1, 1)
	assert.NoError(t, err)

	pokemonRepo.findByNameFn = func(_ context.Context, name string) (*db_models.Pokemon, error) {
		return pokemonWithID(6, "Pikachu"), nil
	}
	err = svc.UpdatePokemon(ctx, 5, request_models.UpdatePokemonRequest{ID: 5, Name: "Pikachu"}, 1, 1)
	assert.ErrorIs(t, err, utils.ErrPokemonAlreadyExists)
}

func TestDeletePokemonCascadesReviews(t *testing.T) {
	ctx := context.Background()

	reviews := []db_models.Review{{Title: "one"}, {Title: "two"}}
	var deletedReviews []db_models.Review
	parentDeleted := false

	pokemonRepo := &pokemonRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Pokemon, error) {
			return pokemonWithID(id, "Pikachu"), nil
		},
		deleteFn: func(_ context.Context, _ *db_models.Pokemon) error {
			parentDeleted = true
			return nil
		},
	}
	reviewRepo := &reviewRepoMock{
		listByPokemonFn: func(_ context.Context, pokemonID int) ([]db_models.Review, error) {
			return reviews, nil
		},
		deleteManyFn: func(_ context.Context, toDelete []db_models.Review) error {
			deletedReviews = toDelete
			return nil
		},
	}
	svc := NewPokemonService(pokemonRepo, &ownerRepoMock{}, &categoryRepoMock{}, reviewRepo)

	require.NoError(t, svc.DeletePokemon(ctx, 5))
	assert.Len(t, deletedReviews, 2)
	assert.True(t, parentDeleted)
}

func TestDeletePokemonAbortsWhenReviewDeleteFails(t *testing.T) {
	ctx := context.Background()
	parentDeleted := false

	pokemonRepo := &pokemonRepoMock{
		getByIDFn: func(_ context.Context, id int) (*db_models.Pokemon, error) {
			return pokemonWithID(id, "Pikachu"), nil
		},
		deleteFn: func(_ context.Context, _ *db_models.Pokemon) error {
			parentDeleted = true
			return nil
		},
	}
	reviewRepo := &reviewRepoMock{
		listByPokemonFn: func(_ context.Context, pokemonID int) ([]db_models.Review, error) {
			return []db_models.Review{{Title: "one"}}, nil
		},
		deleteManyFn: func(_ context.Context, _ []db_models.Review) error {
			return errors.New("bulk delete failed")
		},
	}
	svc := NewPokemonService(pokemonRepo, &ownerRepoMock{}, &categoryRepoMock{}, reviewRepo)

	err := svc.DeletePokemon(ctx, 5)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.False(t, parentDeleted, "parent must remain when dependent delete fails")
}

func TestDeletePokemonNotFound(t *testing.T) {
	svc := NewPokemonService(&pokemonRepoMock{}, &ownerRepoMock{}, &categoryRepoMock{}, &reviewRepoMock{})

	err := svc.DeletePokemon(context.Background(), 9999)
	assert.ErrorIs(t, err, utils.ErrPokemonNotFound)
}

func TestGetPokemonRating(t *testing.T) {
	ctx := context.Background()

	pokemonRepo := &pokemonRepoMock{
		existsFn: func(_ context.Context, id int) (bool, error) {
			return id == 5, nil
		},
		getRatingFn: func(_ context.Context, id int) (float64, error) {
			return 0, nil
		},
	}
	svc := NewPokemonService(pokemonRepo, &ownerRepoMock{}, &categoryRepoMock{}, &reviewRepoMock{})

	// A pokemon without reviews rates 0.
	rating, err := svc.GetPokemonRating(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, float64(0), rating.Rating)
	assert.Equal(t, 5, rating.PokemonID)

	_, err = svc.GetPokemonRating(ctx, 6)
	assert.ErrorIs(t, err, utils.ErrPokemonNotFound)
}

func TestListPokemonMapsResponses(t *testing.T) {
	pokemonRepo := &pokemonRepoMock{
		listFn: func(_ context.Context) ([]db_models.Pokemon, error) {
			return []db_models.Pokemon{*pokemonWithID(1, "Pikachu"), *pokemonWithID(2, "Squirtle")}, nil
		},
	}
	svc := NewPokemonService(pokemonRepo, &ownerRepoMock{}, &categoryRepoMock{}, &reviewRepoMock{})

	responses, err := svc.ListPokemon(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "Pikachu", responses[0].Name)
	assert.Equal(t, 2, responses[1].ID)
}
