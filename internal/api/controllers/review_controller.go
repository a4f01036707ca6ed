package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokereview/internal/models/request_models"
	"pokereview/internal/services"
	"pokereview/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

func (rc *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := rc.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := rc.reviewService.GetReviewByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review fetched successfully")
}

func (rc *ReviewController) ListReviewsByPokemon(c *gin.Context) {
	pokemonID, ok := parseID(c, "pokeId")
	if !ok {
		return
	}

	reviews, err := rc.reviewService.ListReviewsByPokemon(c.Request.Context(), pokemonID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

// CreateReview godoc
// @Summary Create a review
// @Description Create a review written by an existing reviewer for an existing pokemon
// @Tags Review
// @Accept json
// @Produce json
// @Param reviewerId query int true "Reviewer id"
// @Param pokeId query int true "Pokemon id"
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400,404,409 {object} utils.APIResponse
// @Router /api/review [post]
func (rc *ReviewController) CreateReview(c *gin.Context) {
	reviewerID, ok := parseQueryID(c, "reviewerId")
	if !ok {
		return
	}
	pokemonID, ok := parseQueryID(c, "pokeId")
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := rc.reviewService.CreateReview(c.Request.Context(), req, reviewerID, pokemonID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := fmt.Sprintf("/api/review/%d", review.ID)
	utils.RespondCreated(c, location, review, "Review created successfully")
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviewerID, ok := parseQueryID(c, "reviewerId")
	if !ok {
		return
	}
	pokemonID, ok := parseQueryID(c, "pokeId")
	if !ok {
		return
	}

	var req request_models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := rc.reviewService.UpdateReview(c.Request.Context(), id, req, reviewerID, pokemonID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := rc.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
