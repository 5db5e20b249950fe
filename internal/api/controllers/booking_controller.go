package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Submit a booking
// @Description Validate the booking form and store it. The traveler list is resized to the traveler count first.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking form"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := b.bookingService.CreateBooking(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Booking created successfully")
}

// GetConfirmation godoc
// @Summary Booking confirmation
// @Description A booking of the signed-in user with its destination
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/confirmation [get]
func (b *BookingController) GetConfirmation(c *gin.Context) {
	confirmation, err := b.bookingService.GetConfirmation(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, confirmation, "Booking fetched successfully")
}

// ListMyBookings godoc
// @Summary My bookings
// @Description Bookings of the signed-in user, newest first
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListMyBookings(c *gin.Context) {
	page, pageSize, ok := utils.ParsePagination(c, 10)
	if !ok {
		return
	}

	bookings, err := b.bookingService.ListMyBookings(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}
