package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/pkg/logger"
	"travelexplorer/pkg/utils"
)

type fakeReviewRepo struct {
	stored []db_models.Review
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, review *db_models.Review) error {
	review.ID = uuid.New()
	f.stored = append(f.stored, *review)
	return nil
}

func (f *fakeReviewRepo) ListByDestination(ctx context.Context, destinationID string, page, pageSize int) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, r := range f.stored {
		if r.DestinationID.String() == destinationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestAddReview(t *testing.T) {
	dest := db_models.Destination{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Lisbon Weekend", IsActive: true}
	user := uuid.New()
	bookingID := uuid.New()

	bookings := &fakeBookingRepo{created: []*db_models.Booking{{
		BaseModel:     db_models.BaseModel{ID: bookingID},
		UserID:        user,
		DestinationID: dest.ID,
	}}}
	reviews := &fakeReviewRepo{}
	svc := NewReviewService(reviews, &fakeDestinationRepo{rows: []db_models.Destination{dest}}, bookings, logger.NewNopLogger())
	ctx := context.Background()

	booked := bookingID.String()
	review, err := svc.AddReview(ctx, user.String(), request_models.AddReviewRequest{
		DestinationID: dest.ID.String(),
		BookingID:     &booked,
		Rating:        5,
		Title:         " Lovely ",
		Comment:       "Would go again",
	})
	require.NoError(t, err)
	assert.True(t, review.Verified)
	assert.Equal(t, "Lovely", review.Title)
	assert.Equal(t, []string{}, review.Images)

	// someone else's booking does not verify the review
	review, err = svc.AddReview(ctx, uuid.NewString(), request_models.AddReviewRequest{
		DestinationID: dest.ID.String(),
		BookingID:     &booked,
		Rating:        3,
		Comment:       "Fine",
	})
	require.NoError(t, err)
	assert.False(t, review.Verified)

	_, err = svc.AddReview(ctx, user.String(), request_models.AddReviewRequest{DestinationID: dest.ID.String(), Rating: 6})
	assert.ErrorIs(t, err, utils.ErrInvalidRating)

	_, err = svc.AddReview(ctx, user.String(), request_models.AddReviewRequest{DestinationID: uuid.NewString(), Rating: 4})
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)

	list, err := svc.GetReviews(ctx, dest.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGetReviews_FallbackDestinationHasNone(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, &fakeDestinationRepo{}, &fakeBookingRepo{}, logger.NewNopLogger())

	list, err := svc.GetReviews(context.Background(), "fallback-1", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.GetReviews(context.Background(), "fallback-1", 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}

func TestToReviewResponse_ShortensAuthor(t *testing.T) {
	r := &db_models.Review{Account: db_models.Account{FirstName: "Jo", LastName: "doe"}}
	assert.Equal(t, "Jo d.", toReviewResponse(r).Author)

	r.Account.LastName = ""
	assert.Equal(t, "Jo", toReviewResponse(r).Author)
}
