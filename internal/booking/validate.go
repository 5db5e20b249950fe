package booking

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field path (e.g. "traveler_details[1].first_name") to
// the message shown next to that input.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

var messages = map[string]string{
	"StartDate.required":      "Please select a start date",
	"StartDate.datetime":      "Start date must be in YYYY-MM-DD format",
	"NumberOfTravelers.min":   "At least 1 traveler is required",
	"NumberOfTravelers.max":   "Maximum 20 travelers allowed",
	"SpecialRequests.max":     "Special requests must be at most 1000 characters",
	"Name.required":           "Name must be at least 2 characters",
	"Name.min":                "Name must be at least 2 characters",
	"Email.required":          "Please enter a valid email address",
	"Email.email":             "Please enter a valid email address",
	"Phone.required":          "Please enter a valid phone number",
	"Phone.min":               "Please enter a valid phone number",
	"FirstName.required":      "First name is required",
	"LastName.required":       "Last name is required",
	"DateOfBirth.required":    "Date of birth is required",
	"DateOfBirth.datetime":    "Date of birth must be in YYYY-MM-DD format",
	"Nationality.required":    "Nationality is required",
	"PassportExpiry.datetime": "Passport expiry must be in YYYY-MM-DD format",
	"AgreeToTerms.eq":         "You must agree to the terms and conditions",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the whole form in one pass and returns every violation,
// or nil when the form can be submitted.
func Validate(form Form) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, seen := out[path]; seen {
			continue
		}
		out[path] = message(fe)
	}
	return out
}

// CheckTravelerCount rejects a traveler count outside the bookable range
// before any traveler list is sized from it.
func CheckTravelerCount(count int) error {
	switch {
	case count < MinTravelers:
		return FieldErrors{"number_of_travelers": messages["NumberOfTravelers.min"]}
	case count > MaxTravelers:
		return FieldErrors{"number_of_travelers": messages["NumberOfTravelers.max"]}
	}
	return nil
}

// CheckGroupSize rejects more travelers than the destination takes. A
// non-positive limit means the destination sets none.
func CheckGroupSize(count, maxGroupSize int) error {
	if maxGroupSize > 0 && count > maxGroupSize {
		return FieldErrors{"number_of_travelers": fmt.Sprintf("Maximum %d travelers for this destination", maxGroupSize)}
	}
	return nil
}

// fieldPath drops the leading struct name: "Form.contact_info.email" ->
// "contact_info.email".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
