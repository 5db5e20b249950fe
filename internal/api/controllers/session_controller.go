package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelexplorer/internal/booking"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/utils"
)

// SessionController exposes the per-user working state kept in memory: the
// booking draft and the remembered directory filters.
type SessionController struct {
	bookingService     services.BookingServiceInterface
	destinationService services.DestinationServiceInterface
}

func NewSessionController(
	bookingService services.BookingServiceInterface,
	destinationService services.DestinationServiceInterface,
) *SessionController {
	return &SessionController{
		bookingService:     bookingService,
		destinationService: destinationService,
	}
}

// StartDraft godoc
// @Summary Start a booking
// @Description Open a draft for one traveler departing today, prefilled with the account contact
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.StartDraftRequest true "Destination"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/booking [post]
func (s *SessionController) StartDraft(c *gin.Context) {
	var req request_models.StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	draft, err := s.bookingService.StartDraft(c.Request.Context(), c.GetString("user_id"), req.DestinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, draft, "Booking started")
}

// GetDraft godoc
// @Summary Current booking draft
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/booking [get]
func (s *SessionController) GetDraft(c *gin.Context) {
	draft, err := s.bookingService.GetDraft(c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Booking draft fetched")
}

// ReplaceDraft godoc
// @Summary Replace the booking draft
// @Tags Session
// @Accept json
// @Produce json
// @Param request body booking.Draft true "Draft"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/booking [put]
func (s *SessionController) ReplaceDraft(c *gin.Context) {
	var draft booking.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	utils.RespondSuccess(c, s.bookingService.ReplaceDraft(c.GetString("user_id"), draft), "Booking draft saved")
}

// UpdateDraft godoc
// @Summary Update the booking draft
// @Description Merge the fields present. Changing number_of_travelers resizes the traveler list.
// @Tags Session
// @Accept json
// @Produce json
// @Param request body booking.DraftUpdate true "Partial draft"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/booking [patch]
func (s *SessionController) UpdateDraft(c *gin.Context) {
	var update booking.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	utils.RespondSuccess(c, s.bookingService.UpdateDraft(c.GetString("user_id"), update), "Booking draft updated")
}

// DiscardDraft godoc
// @Summary Discard the booking draft
// @Tags Session
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/booking [delete]
func (s *SessionController) DiscardDraft(c *gin.Context) {
	s.bookingService.DiscardDraft(c.GetString("user_id"))
	utils.RespondSuccess(c, nil, "Booking draft discarded")
}

// SubmitDraft godoc
// @Summary Submit the booking draft
// @Tags Session
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/booking/submit [post]
func (s *SessionController) SubmitDraft(c *gin.Context) {
	created, err := s.bookingService.SubmitDraft(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Booking created successfully")
}

// GetFilters godoc
// @Summary Remembered directory filters
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/filters [get]
func (s *SessionController) GetFilters(c *gin.Context) {
	utils.RespondSuccess(c, s.destinationService.GetSavedFilters(c.GetString("user_id")), "Filters fetched")
}

// SaveFilters godoc
// @Summary Remember directory filters
// @Description Merge the filters present into the remembered ones
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request_models.SearchFilters true "Filters"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/filters [put]
func (s *SessionController) SaveFilters(c *gin.Context) {
	var filters request_models.SearchFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filters")
		return
	}

	utils.RespondSuccess(c, s.destinationService.SaveFilters(c.GetString("user_id"), filters), "Filters saved")
}

// ClearFilters godoc
// @Summary Forget directory filters
// @Tags Session
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/filters [delete]
func (s *SessionController) ClearFilters(c *gin.Context) {
	s.destinationService.ClearFilters(c.GetString("user_id"))
	utils.RespondSuccess(c, nil, "Filters cleared")
}
