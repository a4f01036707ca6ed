package response_models

type ReviewResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text,omitempty"`
	Rating     int    `json:"rating"`
	PokemonID  int    `json:"pokemon_id"`
	ReviewerID int    `json:"reviewer_id"`
}
