package request_models

type CreateCountryRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCountryRequest struct {
	ID   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}
