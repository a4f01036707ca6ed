package response_models

type CountryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
