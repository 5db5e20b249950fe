package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// AddReview godoc
// @Summary Add a review
// @Description Rate a destination from 1 to 5. Reviews naming a booking of the author are marked verified.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.AddReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewController) AddReview(c *gin.Context) {
	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.AddReview(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review added successfully")
}

// ListReviews godoc
// @Summary List reviews
// @Description Reviews of a destination, newest first
// @Tags Reviews
// @Param id path string true "Destination ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /destinations/{id}/reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	page, pageSize, ok := utils.ParsePagination(c, 10)
	if !ok {
		return
	}

	reviews, err := r.reviewService.GetReviews(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
