package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Review struct {
	BaseModel
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	DestinationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	BookingID     *uuid.UUID `gorm:"type:uuid"`
	Rating        int        `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"` // Rating between 1 and 5
	Title         string
	Comment       string         `gorm:"type:text;not null"`
	Images        pq.StringArray `gorm:"type:text[]"`
	Helpful       int            `gorm:"default:0"`
	Verified      bool

	Account Account `gorm:"foreignKey:UserID"`
}
