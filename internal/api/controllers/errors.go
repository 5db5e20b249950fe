package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"travelexplorer/internal/booking"
	"travelexplorer/pkg/utils"
)

// respondBookingError reports form violations field by field and hands
// everything else to the shared service error mapping.
func respondBookingError(c *gin.Context, err error) {
	var fields booking.FieldErrors
	if errors.As(err, &fields) {
		_ = c.Error(err)
		utils.RespondValidationError(c, fields)
		return
	}
	utils.HandleServiceError(c, err)
}
