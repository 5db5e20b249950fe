package booking

import "time"

// Draft is the in-progress booking a traveler is editing before submitting.
type Draft struct {
	DestinationID string `json:"destination_id,omitempty"`
	Form
}

// DraftUpdate carries a partial change to a Draft. Nil fields are left
// untouched.
type DraftUpdate struct {
	DestinationID     *string           `json:"destination_id"`
	StartDate         *string           `json:"start_date"`
	NumberOfTravelers *int              `json:"number_of_travelers"`
	SpecialRequests   *string           `json:"special_requests"`
	ContactInfo       *ContactInfo      `json:"contact_info"`
	TravelerDetails   *[]TravelerDetail `json:"traveler_details"`
	AgreeToTerms      *bool             `json:"agree_to_terms"`
}

// NewDraft starts a draft for one traveler departing today, with the
// contact block prefilled from the signed-in user.
func NewDraft(destinationID string, contact ContactInfo, today time.Time) Draft {
	return Draft{
		DestinationID: destinationID,
		Form: Form{
			StartDate:         FormatDate(today),
			NumberOfTravelers: MinTravelers,
			ContactInfo:       contact,
			TravelerDetails:   []TravelerDetail{},
		},
	}
}

// Apply merges u into the draft. The traveler list is resized after the
// merge so it always matches the traveler count.
func (d *Draft) Apply(u DraftUpdate) {
	if u.DestinationID != nil {
		d.DestinationID = *u.DestinationID
	}
	if u.StartDate != nil {
		d.StartDate = *u.StartDate
	}
	if u.SpecialRequests != nil {
		d.SpecialRequests = *u.SpecialRequests
	}
	if u.ContactInfo != nil {
		d.ContactInfo = *u.ContactInfo
	}
	if u.TravelerDetails != nil {
		d.TravelerDetails = CloneTravelers(*u.TravelerDetails)
	}
	if u.AgreeToTerms != nil {
		d.AgreeToTerms = *u.AgreeToTerms
	}
	if u.NumberOfTravelers != nil {
		d.NumberOfTravelers = *u.NumberOfTravelers
	}
	d.Synchronize()
}

// Clone returns a deep copy that shares no traveler storage with d.
func (d Draft) Clone() Draft {
	d.TravelerDetails = CloneTravelers(d.TravelerDetails)
	return d
}

func CloneTravelers(in []TravelerDetail) []TravelerDetail {
	if in == nil {
		return nil
	}
	out := make([]TravelerDetail, len(in))
	copy(out, in)
	return out
}
