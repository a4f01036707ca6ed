package response_models

type OwnerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gym       string `json:"gym,omitempty"`
	CountryID int    `json:"country_id"`
}
