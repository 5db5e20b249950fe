package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelexplorer/internal/models/db_models"
)

type DestinationRepository interface {
	// ListActive returns every active destination, best rated first.
	ListActive(ctx context.Context) ([]db_models.Destination, error)
	ListTopRated(ctx context.Context, limit int) ([]db_models.Destination, error)
	FindActiveByID(ctx context.Context, id string) (*db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) ListActive(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rating DESC").
		Find(&destinations).Error
	return destinations, err
}

func (r *destinationRepository) ListTopRated(ctx context.Context, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rating DESC").
		Limit(limit).
		Find(&destinations).Error
	return destinations, err
}

func (r *destinationRepository) FindActiveByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&destination).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}
