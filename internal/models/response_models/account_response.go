package response_models

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Preferences struct {
	DietaryRestrictions []string `json:"dietary_restrictions"`
	AccessibilityNeeds  []string `json:"accessibility_needs"`
	PreferredActivities []string `json:"preferred_activities"`
}

// UserResponse is an account merged with its profile.
type UserResponse struct {
	ID               string            `json:"id"`
	Email            string            `json:"email"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	Role             string            `json:"role"`
	AvatarURL        string            `json:"avatar_url,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	DateOfBirth      string            `json:"date_of_birth,omitempty"`
	Nationality      string            `json:"nationality,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
	Preferences      Preferences       `json:"preferences"`
	CreatedAt        string            `json:"created_at"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
}
