package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"travelexplorer/internal/booking"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is written once per accepted booking form. TravelerDetails holds
// numberOfTravelers-1 entries; the contact is the first traveler.
type Booking struct {
	BaseModel
	UserID            uuid.UUID                                   `gorm:"type:uuid;index;not null"`
	DestinationID     uuid.UUID                                   `gorm:"type:uuid;index;not null"`
	StartDate         time.Time                                   `gorm:"type:date;not null"`
	EndDate           time.Time                                   `gorm:"type:date;not null"`
	NumberOfTravelers int                                         `gorm:"not null;check:number_of_travelers >= 1 AND number_of_travelers <= 20"`
	TotalPrice        float64                                     `gorm:"type:numeric(12,2);not null"`
	Currency          string                                      `gorm:"size:3"`
	Status            BookingStatus                               `gorm:"size:16;default:pending"`
	PaymentStatus     PaymentStatus                               `gorm:"size:16;default:pending"`
	SpecialRequests   string                                      `gorm:"type:text"`
	ContactInfo       datatypes.JSONType[booking.ContactInfo]     `gorm:"type:jsonb"`
	TravelerDetails   datatypes.JSONSlice[booking.TravelerDetail] `gorm:"type:jsonb"`

	Destination Destination `gorm:"foreignKey:DestinationID"`
}
