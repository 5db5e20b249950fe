package repositories

import (
	"context"

	"gorm.io/gorm"
	"travelexplorer/internal/models/db_models"
)

type ContactRepository interface {
	Create(ctx context.Context, message *db_models.ContactMessage) error
	List(ctx context.Context, page, pageSize int) ([]db_models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *db_models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) List(ctx context.Context, page, pageSize int) ([]db_models.ContactMessage, error) {
	var messages []db_models.ContactMessage
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&messages).Error
	return messages, err
}
