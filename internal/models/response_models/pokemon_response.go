package response_models

import "time"

// Related collections (reviews, owners, categories) are looked up through
// their own endpoints; embedding them here would recurse.
type PokemonResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

type RatingResponse struct {
	PokemonID int     `json:"pokemon_id"`
	Rating    float64 `json:"rating"`
}
