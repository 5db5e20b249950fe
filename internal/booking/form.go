// Package booking holds the booking form working state: the traveler list
// that follows the traveler count, the validation schema, and the price and
// date arithmetic used when a form is submitted.
package booking

import (
	"math"
	"time"
)

const (
	MinTravelers = 1
	MaxTravelers = 20

	// DateLayout is the wire format of every calendar date in a form.
	DateLayout = "2006-01-02"
)

type ContactInfo struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
}

// TravelerDetail describes one traveler beyond the primary contact.
type TravelerDetail struct {
	FirstName           string `json:"first_name" validate:"required"`
	LastName            string `json:"last_name" validate:"required"`
	DateOfBirth         string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Nationality         string `json:"nationality" validate:"required"`
	PassportNumber      string `json:"passport_number,omitempty"`
	PassportExpiry      string `json:"passport_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

// Form is the booking request as the traveler fills it in.
type Form struct {
	StartDate         string           `json:"start_date" validate:"required,datetime=2006-01-02"`
	NumberOfTravelers int              `json:"number_of_travelers" validate:"min=1,max=20"`
	SpecialRequests   string           `json:"special_requests,omitempty" validate:"max=1000"`
	ContactInfo       ContactInfo      `json:"contact_info"`
	TravelerDetails   []TravelerDetail `json:"traveler_details" validate:"dive"`
	AgreeToTerms      bool             `json:"agree_to_terms" validate:"eq=true"`
}

// SetTravelerCount changes the traveler count and resizes the traveler
// list to match it.
func (f *Form) SetTravelerCount(count int) {
	f.NumberOfTravelers = count
	f.TravelerDetails = ResizeTravelers(f.TravelerDetails, count)
}

// Synchronize re-applies the traveler count to the traveler list.
func (f *Form) Synchronize() {
	f.TravelerDetails = ResizeTravelers(f.TravelerDetails, f.NumberOfTravelers)
}

// ResizeTravelers returns a list of length count-1, clamped to
// [0, MaxTravelers-1]. Blank records are appended when growing; records are
// dropped from the tail when shrinking, so entries at lower indices are
// never touched.
func ResizeTravelers(travelers []TravelerDetail, count int) []TravelerDetail {
	want := count - 1
	if want < 0 {
		want = 0
	}
	if want > MaxTravelers-1 {
		want = MaxTravelers - 1
	}

	if travelers == nil {
		travelers = make([]TravelerDetail, 0, want)
	}

	for len(travelers) < want {
		travelers = append(travelers, TravelerDetail{})
	}

	if len(travelers) > want {
		// cap is clipped so a later append cannot overwrite removed entries
		// still visible to the caller through the old slice
		travelers = travelers[:want:want]
	}

	return travelers
}

// TotalPrice is the per-person price times the number of travelers,
// rounded to cents.
func TotalPrice(pricePerPerson float64, travelers int) float64 {
	return math.Round(pricePerPerson*float64(travelers)*100) / 100
}

// EndDate adds the trip duration in calendar days to the start date.
func EndDate(start time.Time, durationDays int) time.Time {
	return start.AddDate(0, 0, durationDays)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
