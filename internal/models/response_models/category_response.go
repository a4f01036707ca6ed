package response_models

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
