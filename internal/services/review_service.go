package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/models/response_models"
	"travelexplorer/internal/repositories"
	"travelexplorer/pkg/logger"
	"travelexplorer/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, userID string, request request_models.AddReviewRequest) (response_models.Review, error)
	GetReviews(ctx context.Context, destinationID string, page, pageSize int) ([]response_models.Review, error)
}

type ReviewService struct {
	reviewRepo      repositories.ReviewRepositoryInterface
	destinationRepo repositories.DestinationRepository
	bookingRepo     repositories.BookingRepository
	log             logger.Logger
}

func NewReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	destinationRepo repositories.DestinationRepository,
	bookingRepo repositories.BookingRepository,
	log logger.Logger,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:      reviewRepo,
		destinationRepo: destinationRepo,
		bookingRepo:     bookingRepo,
		log:             log,
	}
}

// AddReview stores a review of an active destination. It is marked verified
// when it names a booking of the same author for the same destination.
func (s *ReviewService) AddReview(ctx context.Context, userID string, request request_models.AddReviewRequest) (response_models.Review, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return response_models.Review{}, utils.ErrInvalidRating
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return response_models.Review{}, utils.ErrUnauthorized
	}

	destination, err := s.destinationRepo.FindActiveByID(ctx, request.DestinationID)
	if err != nil {
		s.log.Error("Error fetching destination for review", "destination_id", request.DestinationID, "error", err)
		return response_models.Review{}, utils.ErrDatabaseError
	}
	if destination == nil {
		return response_models.Review{}, utils.ErrDestinationNotFound
	}

	review := &db_models.Review{
		UserID:        userUUID,
		DestinationID: destination.ID,
		Rating:        request.Rating,
		Title:         strings.TrimSpace(request.Title),
		Comment:       strings.TrimSpace(request.Comment),
		Images:        pq.StringArray(request.Images),
	}

	if request.BookingID != nil {
		bookingID, err := uuid.Parse(*request.BookingID)
		if err != nil {
			return response_models.Review{}, utils.ErrInvalidInput
		}

		owns, err := s.bookingRepo.OwnsBooking(ctx, bookingID.String(), userID, destination.ID.String())
		if err != nil {
			s.log.Error("Error checking booking ownership", "booking_id", bookingID.String(), "error", err)
			return response_models.Review{}, utils.ErrDatabaseError
		}
		review.BookingID = &bookingID
		review.Verified = owns
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		s.log.Error("Error creating review", "error", err)
		return response_models.Review{}, utils.ErrDatabaseError
	}

	return toReviewResponse(review), nil
}

func (s *ReviewService) GetReviews(ctx context.Context, destinationID string, page, pageSize int) ([]response_models.Review, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	// fallback destinations carry no reviews
	if _, err := uuid.Parse(destinationID); err != nil {
		return []response_models.Review{}, nil
	}

	reviews, err := s.reviewRepo.ListByDestination(ctx, destinationID, page, pageSize)
	if err != nil {
		s.log.Error("Error listing reviews", "destination_id", destinationID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Review, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out, nil
}

func toReviewResponse(r *db_models.Review) response_models.Review {
	author := strings.TrimSpace(r.Account.FirstName + " " + initial(r.Account.LastName))

	return response_models.Review{
		ID:            r.ID.String(),
		DestinationID: r.DestinationID.String(),
		Author:        author,
		Rating:        r.Rating,
		Title:         r.Title,
		Comment:       r.Comment,
		Images:        nonNil(r.Images),
		Helpful:       r.Helpful,
		Verified:      r.Verified,
		CreatedAt:     utils.FormatRFC3339(r.CreatedTime()),
	}
}

// initial shortens a last name to "D." for public display.
func initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(r) + "."
	}
	return ""
}
