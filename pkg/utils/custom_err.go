package utils

import "errors"

var (
	ErrPokemonNotFound  = errors.New("pokemon not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCountryNotFound  = errors.New("country not found")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrReviewerNotFound = errors.New("reviewer not found")
	ErrReviewNotFound   = errors.New("review not found")

	ErrPokemonAlreadyExists  = errors.New("pokemon already exists")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrCountryAlreadyExists  = errors.New("country already exists")
	ErrOwnerAlreadyExists    = errors.New("owner already exists")
	ErrReviewerAlreadyExists = errors.New("reviewer already exists")
	ErrReviewAlreadyExists   = errors.New("review already exists")

	ErrIDMismatch    = errors.New("path id does not match body id")
	ErrDatabaseError = errors.New("database error")
)
