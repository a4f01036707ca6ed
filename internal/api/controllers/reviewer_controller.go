package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokereview/internal/models/request_models"
	"pokereview/internal/services"
	"pokereview/pkg/utils"
)

type ReviewerController struct {
	reviewerService services.ReviewerServiceInterface
}

func NewReviewerController(reviewerService services.ReviewerServiceInterface) *ReviewerController {
	return &ReviewerController{
		reviewerService: reviewerService,
	}
}

func (rc *ReviewerController) ListReviewers(c *gin.Context) {
	reviewers, err := rc.reviewerService.ListReviewers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviewers, "Reviewers fetched successfully")
}

func (rc *ReviewerController) GetReviewerByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviewer, err := rc.reviewerService.GetReviewerByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviewer, "Reviewer fetched successfully")
}

func (rc *ReviewerController) ListReviewsByReviewer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := rc.reviewerService.ListReviewsByReviewer(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (rc *ReviewerController) CreateReviewer(c *gin.Context) {
	var req request_models.CreateReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reviewer, err := rc.reviewerService.CreateReviewer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := fmt.Sprintf("/api/reviewer/%d", reviewer.ID)
	utils.RespondCreated(c, location, reviewer, "Reviewer created successfully")
}

func (rc *ReviewerController) UpdateReviewer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := rc.reviewerService.UpdateReviewer(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

func (rc *ReviewerController) DeleteReviewer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := rc.reviewerService.DeleteReviewer(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
