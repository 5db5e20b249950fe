package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

// UpdatePreferencesRequest replaces the preference sets that are present.
// Absent sets are kept as they are.
type UpdatePreferencesRequest struct {
	DietaryRestrictions *[]string `json:"dietary_restrictions"`
	AccessibilityNeeds  *[]string `json:"accessibility_needs"`
	PreferredActivities *[]string `json:"preferred_activities"`
}
