package request_models

import "travelexplorer/internal/booking"

// CreateBookingRequest is a complete booking form for one destination. The
// form itself is checked by booking.Validate, not by gin binding, so every
// violation is reported at once.
type CreateBookingRequest struct {
	DestinationID string `json:"destination_id"`
	booking.Form
}

// StartDraftRequest opens a booking draft for a destination.
type StartDraftRequest struct {
	DestinationID string `json:"destination_id" binding:"required"`
}
