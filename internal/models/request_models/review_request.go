package request_models

type CreateReviewRequest struct {
	Title  string `json:"title" binding:"required"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type UpdateReviewRequest struct {
	ID     int    `json:"id" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}
