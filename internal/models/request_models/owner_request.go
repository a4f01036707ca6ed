package request_models

type CreateOwnerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Gym       string `json:"gym"`
}

type UpdateOwnerRequest struct {
	ID        int    `json:"id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Gym       string `json:"gym"`
}
