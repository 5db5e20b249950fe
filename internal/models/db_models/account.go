package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	Role         string `gorm:"default:user"`

	Profile  *Profile `gorm:"foreignKey:AccountID"`
	Bookings []Booking
	Reviews  []Review
}
