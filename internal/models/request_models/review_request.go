package request_models

type AddReviewRequest struct {
	DestinationID string   `json:"destination_id" binding:"required,uuid"`
	BookingID     *string  `json:"booking_id" binding:"omitempty,uuid"`
	Rating        int      `json:"rating" binding:"required"`
	Title         string   `json:"title" binding:"required,max=200"`
	Comment       string   `json:"comment" binding:"required,max=2000"`
	Images        []string `json:"images" binding:"omitempty,dive,url"`
}
