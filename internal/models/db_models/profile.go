package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Preferences are free-text tags kept as sets.
type Preferences struct {
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	AccessibilityNeeds  []string `json:"accessibilityNeeds"`
	PreferredActivities []string `json:"preferredActivities"`
}

// Profile is created together with its Account and shares its lifetime.
type Profile struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AvatarURL        string
	Phone            string
	DateOfBirth      *time.Time `gorm:"type:date"`
	Nationality      string
	EmergencyContact datatypes.JSONType[*EmergencyContact] `gorm:"type:jsonb"`
	Preferences      datatypes.JSONType[Preferences]       `gorm:"type:jsonb"`
}
