package services

import (
	"context"

	"pokereview/internal/models/db_models"
)

// Function-field repository mocks. Unset fields return zero values, so each
// test wires only the calls it expects.

type pokemonRepoMock struct {
	existsFn     func(ctx context.Context, id int) (bool, error)
	getByIDFn    func(ctx context.Context, id int) (*db_models.Pokemon, error)
	findByNameFn func(ctx context.Context, name string) (*db_models.Pokemon, error)
	listFn       func(ctx context.Context) ([]db_models.Pokemon, error)
	getRatingFn  func(ctx context.Context, id int) (float64, error)
	createFn     func(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error
	updateFn     func(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error
	deleteFn     func(ctx context.Context, pokemon *db_models.Pokemon) error
}

func (m *pokemonRepoMock) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *pokemonRepoMock) GetByID(ctx context.Context, id int) (*db_models.Pokemon, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *pokemonRepoMock) FindByName(ctx context.Context, name string) (*db_models.Pokemon, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *pokemonRepoMock) List(ctx context.Context) ([]db_models.Pokemon, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *pokemonRepoMock) GetRating(ctx context.Context, id int) (float64, error) {
	if m.getRatingFn != nil {
		return m.getRatingFn(ctx, id)
	}
	return 0, nil
}

func (m *pokemonRepoMock) Create(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error {
	if m.createFn != nil {
		return m.createFn(ctx, pokemon, owner, category)
	}
	return nil
}

func (m *pokemonRepoMock) Update(ctx context.Context, pokemon *db_models.Pokemon, owner *db_models.Owner, category *db_models.Category) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, pokemon, owner, category)
	}
	return nil
}

func (m *pokemonRepoMock) Delete(ctx context.Context, pokemon *db_models.Pokemon) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, pokemon)
	}
	return nil
}

type categoryRepoMock struct {
	existsFn      func(ctx context.Context, id int) (bool, error)
	getByIDFn     func(ctx context.Context, id int) (*db_models.Category, error)
	findByNameFn  func(ctx context.Context, name string) (*db_models.Category, error)
	listFn        func(ctx context.Context) ([]db_models.Category, error)
	listPokemonFn func(ctx context.Context, categoryID int) ([]db_models.Pokemon, error)
	createFn      func(ctx context.Context, category *db_models.Category) error
	updateFn      func(ctx context.Context, category *db_models.Category) error
	deleteFn      func(ctx context.Context, category *db_models.Category) error
}

func (m *categoryRepoMock) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id int) (*db_models.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *categoryRepoMock) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *categoryRepoMock) List(ctx context.Context) ([]db_models.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *categoryRepoMock) ListPokemonByCategory(ctx context.Context, categoryID int) ([]db_models.Pokemon, error) {
	if m.listPokemonFn != nil {
		return m.listPokemonFn(ctx, categoryID)
	}
	return nil, nil
}

func (m *categoryRepoMock) Create(ctx context.Context, category *db_models.Category) error {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	return nil
}

func (m *categoryRepoMock) Update(ctx context.Context, category *db_models.Category) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, category)
	}
	return nil
}

func (m *categoryRepoMock) Delete(ctx context.Context, category *db_models.Category) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, category)
	}
	return nil
}

type countryRepoMock struct {
	existsFn     func(ctx context.Context, id int) (bool, error)
	getByIDFn    func(ctx context.Context, id int) (*db_models.Country, error)
	findByNameFn func(ctx context.Context, name string) (*db_models.Country, error)
	getByOwnerFn func(ctx context.Context, ownerID int) (*db_models.Country, error)
	listFn       func(ctx context.Context) ([]db_models.Country, error)
	createFn     func(ctx context.Context, country *db_models.Country) error
	updateFn     func(ctx context.Context, country *db_models.Country) error
	deleteFn     func(ctx context.Context, country *db_models.Country) error
}

func (m *countryRepoMock) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *countryRepoMock) GetByID(ctx context.Context, id int) (*db_models.Country, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *countryRepoMock) FindByName(ctx context.Context, name string) (*db_models.Country, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *countryRepoMock) GetByOwner(ctx context.Context, ownerID int) (*db_models.Country, error) {
	if m.getByOwnerFn != nil {
		return m.getByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *countryRepoMock) List(ctx context.Context) ([]db_models.Country, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *countryRepoMock) Create(ctx context.Context, country *db_models.Country) error {
	if m.createFn != nil {
		return m.createFn(ctx, country)
	}
	return nil
}

func (m *countryRepoMock) Update(ctx context.Context, country *db_models.Country) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, country)
	}
	return nil
}

func (m *countryRepoMock) Delete(ctx context.Context, country *db_models.Country) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, country)
	}
	return nil
}

type ownerRepoMock struct {
	existsFn      func(ctx context.Context, id int) (bool, error)
	getByIDFn     func(ctx context.Context, id int) (*db_models.Owner, error)
	findByNameFn  func(ctx context.Context, firstName, lastName string) (*db_models.Owner, error)
	listFn        func(ctx context.Context) ([]db_models.Owner, error)
	listPokemonFn func(ctx context.Context, ownerID int) ([]db_models.Pokemon, error)
	createFn      func(ctx context.Context, owner *db_models.Owner) error
	updateFn      func(ctx context.Context, owner *db_models.Owner) error
	deleteFn      func(ctx context.Context, owner *db_models.Owner) error
}

func (m *ownerRepoMock) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *ownerRepoMock) GetByID(ctx context.Context, id int) (*db_models.Owner, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *ownerRepoMock) FindByName(ctx context.Context, firstName, lastName string) (*db_models.Owner, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, firstName, lastName)
	}
	return nil, nil
}

func (m *ownerRepoMock) List(ctx context.Context) ([]db_models.Owner, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *ownerRepoMock) ListPokemonByOwner(ctx context.Context, ownerID int) ([]db_models.Pokemon, error) {
	if m.listPokemonFn != nil {
		return m.listPokemonFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *ownerRepoMock) Create(ctx context.Context, owner *db_models.Owner) error {
	if m.createFn != nil {
		return m.createFn(ctx, owner)
	}
	return nil
}

func (m *ownerRepoMock) Update(ctx context.Context, owner *db_models.Owner) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, owner)
	}
	return nil
}

func (m *ownerRepoMock) Delete(ctx context.Context, owner *db_models.Owner) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, owner)
	}
	return nil
}

type reviewerRepoMock struct {
	existsFn     func(ctx context.Context, id int) (bool, error)
	getByIDFn    func(ctx context.Context, id int) (*db_models.Reviewer, error)
	findByNameFn func(ctx context.Context, firstName, lastName string) (*db_models.Reviewer, error)
	listFn       func(ctx context.Context) ([]db_models.Reviewer, error)
	createFn     func(ctx context.Context, reviewer *db_models.Reviewer) error
	updateFn     func(ctx context.Context, reviewer *db_models.Reviewer) error
	deleteFn     func(ctx context.Context, reviewer *db_models.Reviewer) error
}

func (m *reviewerRepoMock) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *reviewerRepoMock) GetByID(ctx context.Context, id int) (*db_models.Reviewer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *reviewerRepoMock) FindByName(ctx context.Context, firstName, lastName string) (*db_models.Reviewer, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, firstName, lastName)
	}
	return nil, nil
}

func (m *reviewerRepoMock) List(ctx context.Context) ([]db_models.Reviewer, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *reviewerRepoMock) Create(ctx context.Context, reviewer *db_models.Reviewer) error {
	if m.createFn != nil {
		return m.createFn(ctx, reviewer)
	}
	return nil
}

func (m *reviewerRepoMock) Update(ctx context.Context, reviewer *db_models.Reviewer) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, reviewer)
	}
	return nil
}

func (m *reviewerRepoMock) Delete(ctx context.Context, reviewer *db_models.Reviewer) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, reviewer)
	}
	return nil
}

type reviewRepoMock struct {
	existsFn         func(ctx context.Context, id int) (bool, error)
	getByIDFn        func(ctx context.Context, id int) (*db_models.Review, error)
	findByTitleFn    func(ctx context.Context, title string) (*db_models.Review, error)
	listFn           func(ctx context.Context) ([]db_models.Review, error)
	listByPokemonFn  func(ctx context.Context, pokemonID int) ([]db_models.Review, error)
	listByReviewerFn func(ctx context.Context, reviewerID int) ([]db_models.Review, error)
	createFn         func(ctx context.Context, review *db_models.Review) error
	updateFn         func(ctx context.Context, review *db_models.Review) error
	deleteFn         func(ctx context.Context, review *db_models.Review) error
	deleteManyFn     func(ctx context.Context, reviews []db_models.Review) error
}

func (m *reviewRepoMock) Exists(ctx context.Context, id int) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *reviewRepoMock) GetByID(ctx context.Context, id int) (*db_models.Review, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *reviewRepoMock) FindByTitle(ctx context.Context, title string) (*db_models.Review, error) {
	if m.findByTitleFn != nil {
		return m.findByTitleFn(ctx, title)
	}
	return nil, nil
}

func (m *reviewRepoMock) List(ctx context.Context) ([]db_models.Review, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *reviewRepoMock) ListByPokemon(ctx context.Context, pokemonID int) ([]db_models.Review, error) {
	if m.listByPokemonFn != nil {
		return m.listByPokemonFn(ctx, pokemonID)
	}
	return nil, nil
}

func (m *reviewRepoMock) ListByReviewer(ctx context.Context, reviewerID int) ([]db_models.Review, error) {
	if m.listByReviewerFn != nil {
		return m.listByReviewerFn(ctx, reviewerID)
	}
	return nil, nil
}

func (m *reviewRepoMock) Create(ctx context.Context, review *db_models.Review) error {
	if m.createFn != nil {
		return m.createFn(ctx, review)
	}
	return nil
}

func (m *reviewRepoMock) Update(ctx context.Context, review *db_models.Review) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, review)
	}
	return nil
}

func (m *reviewRepoMock) Delete(ctx context.Context, review *db_models.Review) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, review)
	}
	return nil
}

func (m *reviewRepoMock) DeleteMany(ctx context.Context, reviews []db_models.Review) error {
	if m.deleteManyFn != nil {
		return m.deleteManyFn(ctx, reviews)
	}
	return nil
}
