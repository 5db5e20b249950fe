package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelexplorer/internal/models/db_models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *db_models.Booking) error
	// FindByIDForUser only returns the booking when it belongs to userID.
	FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Booking, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, int64, error)
	// OwnsBooking reports whether userID booked destinationID under bookingID.
	OwnsBooking(ctx context.Context, bookingID, userID, destinationID string) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Omit("Destination").Create(booking).Error
}

func (r *bookingRepository) FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, int64, error) {
	var (
		bookings []db_models.Booking
		total    int64
	)

	query := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("user_id = ?", userID).
		Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Destination").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *bookingRepository) OwnsBooking(ctx context.Context, bookingID, userID, destinationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ? AND user_id = ? AND destination_id = ?", bookingID, userID, destinationID).
		Count(&count).Error
	return count > 0, err
}
