package request_models

import "time"

type CreatePokemonRequest struct {
	Name      string    `json:"name" binding:"required"`
	BirthDate time.Time `json:"birth_date"`
}

type UpdatePokemonRequest struct {
	ID        int       `json:"id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	BirthDate time.Time `json:"birth_date"`
}
