package db_models

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null;index"`
	Subject string
	Message string `gorm:"type:text;not null"`
}
