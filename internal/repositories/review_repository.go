package repositories

import (
	"context"

	"gorm.io/gorm"
	"travelexplorer/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	ListByDestination(ctx context.Context, destinationID string, page, pageSize int) ([]db_models.Review, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Omit("Account").Create(review).Error
}

func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID string, page, pageSize int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("destination_id = ?", destinationID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
