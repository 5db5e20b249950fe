package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		StartDate:         "2025-07-01",
		NumberOfTravelers: 2,
		ContactInfo: ContactInfo{
			Name:  "Jo Doe",
			Email: "jo@example.com",
			Phone: "+41 79 123 45 67",
		},
		TravelerDetails: []TravelerDetail{traveler("Sam")},
		AgreeToTerms:    true,
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

func TestValidate_ValidForm(t *testing.T) {
	assert.NoError(t, Validate(validForm()))
}

func TestValidate_PassportFieldsOptional(t *testing.T) {
	f := validForm()
	f.TravelerDetails[0].PassportNumber = ""
	f.TravelerDetails[0].PassportExpiry = ""
	assert.NoError(t, Validate(f))

	f.TravelerDetails[0].PassportExpiry = "next year"
	fe := fieldErrors(t, Validate(f))
	assert.Equal(t, "Passport expiry must be in YYYY-MM-DD format", fe["traveler_details[0].passport_expiry"])
}

func TestValidate_EachRequiredFieldBlocksSubmission(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Form)
		field  string
		msg    string
	}{
		{"start date", func(f *Form) { f.StartDate = "" }, "start_date", "Please select a start date"},
		{"contact name", func(f *Form) { f.ContactInfo.Name = "" }, "contact_info.name", "Name must be at least 2 characters"},
		{"short name", func(f *Form) { f.ContactInfo.Name = "J" }, "contact_info.name", "Name must be at least 2 characters"},
		{"contact email", func(f *Form) { f.ContactInfo.Email = "" }, "contact_info.email", "Please enter a valid email address"},
		{"bad email", func(f *Form) { f.ContactInfo.Email = "not-an-email" }, "contact_info.email", "Please enter a valid email address"},
		{"contact phone", func(f *Form) { f.ContactInfo.Phone = "" }, "contact_info.phone", "Please enter a valid phone number"},
		{"short phone", func(f *Form) { f.ContactInfo.Phone = "12345" }, "contact_info.phone", "Please enter a valid phone number"},
		{"first name", func(f *Form) { f.TravelerDetails[0].FirstName = "" }, "traveler_details[0].first_name", "First name is required"},
		{"last name", func(f *Form) { f.TravelerDetails[0].LastName = "" }, "traveler_details[0].last_name", "Last name is required"},
		{"date of birth", func(f *Form) { f.TravelerDetails[0].DateOfBirth = "" }, "traveler_details[0].date_of_birth", "Date of birth is required"},
		{"nationality", func(f *Form) { f.TravelerDetails[0].Nationality = "" }, "traveler_details[0].nationality", "Nationality is required"},
		{"terms", func(f *Form) { f.AgreeToTerms = false }, "agree_to_terms", "You must agree to the terms and conditions"},
		{"zero travelers", func(f *Form) { f.NumberOfTravelers = 0 }, "number_of_travelers", "At least 1 traveler is required"},
		{"too many travelers", func(f *Form) { f.NumberOfTravelers = 21 }, "number_of_travelers", "Maximum 20 travelers allowed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)

			fe := fieldErrors(t, Validate(f))
			assert.Len(t, fe, 1)
			assert.Equal(t, tc.msg, fe[tc.field])
		})
	}
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	f := Form{
		NumberOfTravelers: 3,
		TravelerDetails:   []TravelerDetail{traveler("ok"), {}},
	}

	fe := fieldErrors(t, Validate(f))

	for _, field := range []string{
		"start_date",
		"contact_info.name",
		"contact_info.email",
		"contact_info.phone",
		"traveler_details[1].first_name",
		"traveler_details[1].last_name",
		"traveler_details[1].date_of_birth",
		"traveler_details[1].nationality",
		"agree_to_terms",
	} {
		assert.Contains(t, fe, field)
	}
	assert.NotContains(t, fe, "traveler_details[0].first_name")
	assert.Contains(t, fe.Error(), "agree_to_terms")
}

func TestCheckTravelerCount(t *testing.T) {
	assert.NoError(t, CheckTravelerCount(MinTravelers))
	assert.NoError(t, CheckTravelerCount(MaxTravelers))
	assert.Equal(t, FieldErrors{"number_of_travelers": "Maximum 20 travelers allowed"}, CheckTravelerCount(21))
	assert.Equal(t, FieldErrors{"number_of_travelers": "Maximum 20 travelers allowed"}, CheckTravelerCount(1<<30))
	assert.Equal(t, FieldErrors{"number_of_travelers": "At least 1 traveler is required"}, CheckTravelerCount(0))
}

func TestCheckGroupSize(t *testing.T) {
	assert.NoError(t, CheckGroupSize(12, 0), "no limit set")
	assert.NoError(t, CheckGroupSize(8, 8))
	assert.Equal(t, FieldErrors{"number_of_travelers": "Maximum 8 travelers for this destination"}, CheckGroupSize(9, 8))
}
