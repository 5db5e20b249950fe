package response_models

import "travelexplorer/internal/booking"

type BookingCreated struct {
	ID string `json:"id"`
}

type BookingDestination struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	Duration int    `json:"duration"`
}

type BookingConfirmation struct {
	ID                string                   `json:"id"`
	Status            string                   `json:"status"`
	PaymentStatus     string                   `json:"payment_status"`
	StartDate         string                   `json:"start_date"`
	EndDate           string                   `json:"end_date"`
	NumberOfTravelers int                      `json:"number_of_travelers"`
	TotalPrice        float64                  `json:"total_price"`
	Currency          string                   `json:"currency"`
	SpecialRequests   string                   `json:"special_requests,omitempty"`
	ContactInfo       booking.ContactInfo      `json:"contact_info"`
	TravelerDetails   []booking.TravelerDetail `json:"traveler_details"`
	Destination       BookingDestination       `json:"destination"`
	CreatedAt         string                   `json:"created_at"`
}

type BookingSummary struct {
	ID                string             `json:"id"`
	Status            string             `json:"status"`
	StartDate         string             `json:"start_date"`
	EndDate           string             `json:"end_date"`
	NumberOfTravelers int                `json:"number_of_travelers"`
	TotalPrice        float64            `json:"total_price"`
	Currency          string             `json:"currency"`
	Destination       BookingDestination `json:"destination"`
}
