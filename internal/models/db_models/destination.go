package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Difficulty string

const (
	DifficultyEasy        Difficulty = "Easy"
	DifficultyModerate    Difficulty = "Moderate"
	DifficultyChallenging Difficulty = "Challenging"
)

type ItineraryDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Destination struct {
	BaseModel
	Name         string `gorm:"not null"`
	Description  string `gorm:"type:text"`
	Location     string
	Country      string
	Continent    string                            `gorm:"index"`
	Images       pq.StringArray                    `gorm:"type:text[]"`
	Price        float64                           `gorm:"type:numeric(12,2);not null"`
	Currency     string                            `gorm:"size:3;default:USD"`
	Rating       float64                           `gorm:"type:numeric(2,1);index"`
	Duration     int                               `gorm:"not null"` // days
	Highlights   pq.StringArray                    `gorm:"type:text[]"`
	Itinerary    datatypes.JSONSlice[ItineraryDay] `gorm:"type:jsonb"`
	Included     pq.StringArray                    `gorm:"type:text[]"`
	Excluded     pq.StringArray                    `gorm:"type:text[]"`
	Languages    pq.StringArray                    `gorm:"type:text[]"`
	Difficulty   Difficulty                        `gorm:"size:16"`
	MaxGroupSize int
	IsActive     bool `gorm:"default:true;index"`
}
