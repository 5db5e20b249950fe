package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"travelexplorer/internal/booking"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/models/response_models"
	"travelexplorer/internal/repositories"
	"travelexplorer/pkg/logger"
	mem "travelexplorer/pkg/memcache"
	"travelexplorer/pkg/metrics"
	"travelexplorer/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID string, request request_models.CreateBookingRequest) (response_models.BookingCreated, error)
	GetConfirmation(ctx context.Context, userID, bookingID string) (response_models.BookingConfirmation, error)
	ListMyBookings(ctx context.Context, userID string, page, pageSize int) ([]response_models.BookingSummary, error)

	StartDraft(ctx context.Context, userID, destinationID string) (booking.Draft, error)
	GetDraft(userID string) (booking.Draft, error)
	ReplaceDraft(userID string, draft booking.Draft) booking.Draft
	UpdateDraft(userID string, update booking.DraftUpdate) booking.Draft
	DiscardDraft(userID string)
	SubmitDraft(ctx context.Context, userID string) (response_models.BookingCreated, error)
}

// ContactProvider prefills the contact block of a new draft.
type ContactProvider interface {
	ContactFor(ctx context.Context, userID string) booking.ContactInfo
}

type BookingService struct {
	bookingRepo     repositories.BookingRepository
	destinationRepo repositories.DestinationRepository
	sessions        mem.SessionStore
	contacts        ContactProvider
	mail            IMailService
	metrics         *metrics.Metrics
	log             logger.Logger
	now             func() time.Time
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	destinationRepo repositories.DestinationRepository,
	sessions mem.SessionStore,
	contacts ContactProvider,
	mail IMailService,
	m *metrics.Metrics,
	log logger.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:     bookingRepo,
		destinationRepo: destinationRepo,
		sessions:        sessions,
		contacts:        contacts,
		mail:            mail,
		metrics:         m,
		log:             log,
		now:             utils.NowUTC,
	}
}

// CreateBooking checks the traveler count, resizes the traveler list to it,
// validates the whole form and writes exactly one booking row. Store failures are
// logged and reported as ErrBookingFailed.
func (b *BookingService) CreateBooking(ctx context.Context, userID string, request request_models.CreateBookingRequest) (response_models.BookingCreated, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return response_models.BookingCreated{}, utils.ErrUnauthorized
	}

	form := request.Form
	if err := booking.CheckTravelerCount(form.NumberOfTravelers); err != nil {
		b.metrics.BookingFailures.WithLabelValues("validation").Inc()
		return response_models.BookingCreated{}, err
	}
	form.TravelerDetails = booking.CloneTravelers(form.TravelerDetails)
	form.Synchronize()

	if err := validateSubmission(request.DestinationID, form); err != nil {
		b.metrics.BookingFailures.WithLabelValues("validation").Inc()
		return response_models.BookingCreated{}, err
	}

	destination, err := b.loadBookable(ctx, request.DestinationID)
	if err != nil {
		return response_models.BookingCreated{}, err
	}
	if err := booking.CheckGroupSize(form.NumberOfTravelers, destination.MaxGroupSize); err != nil {
		b.metrics.BookingFailures.WithLabelValues("validation").Inc()
		return response_models.BookingCreated{}, err
	}

	start, err := booking.ParseDate(form.StartDate)
	if err != nil {
		return response_models.BookingCreated{}, booking.FieldErrors{"start_date": "Start date must be in YYYY-MM-DD format"}
	}

	record := &db_models.Booking{
		UserID:            userUUID,
		DestinationID:     destination.ID,
		StartDate:         start,
		EndDate:           booking.EndDate(start, destination.Duration),
		NumberOfTravelers: form.NumberOfTravelers,
		TotalPrice:        booking.TotalPrice(destination.Price, form.NumberOfTravelers),
		Currency:          destination.Currency,
		Status:            db_models.BookingStatusPending,
		PaymentStatus:     db_models.PaymentStatusPending,
		SpecialRequests:   form.SpecialRequests,
		ContactInfo:       datatypes.NewJSONType(form.ContactInfo),
		TravelerDetails:   datatypes.NewJSONSlice(form.TravelerDetails),
	}

	if err := b.bookingRepo.Create(ctx, record); err != nil {
		b.log.Error("Error creating booking", "user_id", userID, "destination_id", request.DestinationID, "error", err)
		b.metrics.BookingFailures.WithLabelValues("store").Inc()
		return response_models.BookingCreated{}, utils.ErrBookingFailed
	}

	b.metrics.BookingsCreated.Inc()
	b.sessions.ClearDraft(userID)
	b.log.Info("Booking created", "booking_id", record.ID.String(), "user_id", userID)

	mailErr := b.mail.SendBookingConfirmation(form.ContactInfo.Email, BookingMail{
		BookingID:         record.ID.String(),
		ContactName:       form.ContactInfo.Name,
		DestinationName:   destination.Name,
		StartDate:         booking.FormatDate(record.StartDate),
		EndDate:           booking.FormatDate(record.EndDate),
		NumberOfTravelers: record.NumberOfTravelers,
		TotalPrice:        record.TotalPrice,
		Currency:          record.Currency,
	})
	if mailErr != nil {
		b.log.Warn("Error sending booking confirmation", "booking_id", record.ID.String(), "error", mailErr)
	}

	return response_models.BookingCreated{ID: record.ID.String()}, nil
}

func validateSubmission(destinationID string, form booking.Form) error {
	fields := booking.FieldErrors{}

	var fe booking.FieldErrors
	if err := booking.Validate(form); err != nil {
		if !errors.As(err, &fe) {
			return err
		}
		for k, v := range fe {
			fields[k] = v
		}
	}
	if destinationID == "" {
		fields["destination_id"] = "Please select a destination"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// loadBookable resolves an active stored destination. Fallback ids are not
// stored and so cannot be booked.
func (b *BookingService) loadBookable(ctx context.Context, destinationID string) (*db_models.Destination, error) {
	if _, err := uuid.Parse(destinationID); err != nil {
		return nil, utils.ErrDestinationNotFound
	}

	destination, err := b.destinationRepo.FindActiveByID(ctx, destinationID)
	if err != nil {
		b.log.Error("Error fetching destination for booking", "destination_id", destinationID, "error", err)
		b.metrics.BookingFailures.WithLabelValues("store").Inc()
		return nil, utils.ErrBookingFailed
	}
	if destination == nil {
		b.metrics.BookingFailures.WithLabelValues("destination").Inc()
		return nil, utils.ErrDestinationNotFound
	}
	return destination, nil
}

func (b *BookingService) GetConfirmation(ctx context.Context, userID, bookingID string) (response_models.BookingConfirmation, error) {
	if _, err := uuid.Parse(bookingID); err != nil {
		return response_models.BookingConfirmation{}, utils.ErrBookingNotFound
	}

	record, err := b.bookingRepo.FindByIDForUser(ctx, bookingID, userID)
	if err != nil {
		b.log.Error("Error fetching booking", "booking_id", bookingID, "error", err)
		return response_models.BookingConfirmation{}, utils.ErrBookingNotFound
	}
	if record == nil {
		return response_models.BookingConfirmation{}, utils.ErrBookingNotFound
	}

	travelers := []booking.TravelerDetail(record.TravelerDetails)
	if travelers == nil {
		travelers = []booking.TravelerDetail{}
	}

	return response_models.BookingConfirmation{
		ID:                record.ID.String(),
		Status:            string(record.Status),
		PaymentStatus:     string(record.PaymentStatus),
		StartDate:         booking.FormatDate(record.StartDate),
		EndDate:           booking.FormatDate(record.EndDate),
		NumberOfTravelers: record.NumberOfTravelers,
		TotalPrice:        record.TotalPrice,
		Currency:          record.Currency,
		SpecialRequests:   record.SpecialRequests,
		ContactInfo:       record.ContactInfo.Data(),
		TravelerDetails:   travelers,
		Destination:       toBookingDestination(&record.Destination),
		CreatedAt:         utils.FormatRFC3339(record.CreatedTime()),
	}, nil
}

func (b *BookingService) ListMyBookings(ctx context.Context, userID string, page, pageSize int) ([]response_models.BookingSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	records, _, err := b.bookingRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		b.log.Error("Error listing bookings", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.BookingSummary, 0, len(records))
	for i := range records {
		r := &records[i]
		summaries = append(summaries, response_models.BookingSummary{
			ID:                r.ID.String(),
			Status:            string(r.Status),
			StartDate:         booking.FormatDate(r.StartDate),
			EndDate:           booking.FormatDate(r.EndDate),
			NumberOfTravelers: r.NumberOfTravelers,
			TotalPrice:        r.TotalPrice,
			Currency:          r.Currency,
			Destination:       toBookingDestination(&r.Destination),
		})
	}

	return summaries, nil
}

func toBookingDestination(d *db_models.Destination) response_models.BookingDestination {
	return response_models.BookingDestination{
		ID:       d.ID.String(),
		Name:     d.Name,
		Location: d.Location,
		Country:  d.Country,
		Duration: d.Duration,
	}
}

// StartDraft opens a fresh draft for one traveler departing today, with the
// contact block taken from the account.
func (b *BookingService) StartDraft(ctx context.Context, userID, destinationID string) (booking.Draft, error) {
	if _, err := b.loadBookable(ctx, destinationID); err != nil {
		return booking.Draft{}, err
	}

	draft := booking.NewDraft(destinationID, b.contacts.ContactFor(ctx, userID), b.now())
	b.sessions.SetDraft(userID, draft)
	return draft, nil
}

func (b *BookingService) GetDraft(userID string) (booking.Draft, error) {
	draft, ok := b.sessions.GetDraft(userID)
	if !ok {
		return booking.Draft{}, utils.ErrNoDraft
	}
	return draft, nil
}

func (b *BookingService) ReplaceDraft(userID string, draft booking.Draft) booking.Draft {
	b.sessions.SetDraft(userID, draft)
	stored, _ := b.sessions.GetDraft(userID)
	return stored
}

func (b *BookingService) UpdateDraft(userID string, update booking.DraftUpdate) booking.Draft {
	return b.sessions.UpdateDraft(userID, update)
}

func (b *BookingService) DiscardDraft(userID string) {
	b.sessions.ClearDraft(userID)
}

func (b *BookingService) SubmitDraft(ctx context.Context, userID string) (response_models.BookingCreated, error) {
	draft, ok := b.sessions.GetDraft(userID)
	if !ok {
		return response_models.BookingCreated{}, utils.ErrNoDraft
	}

	return b.CreateBooking(ctx, userID, request_models.CreateBookingRequest{
		DestinationID: draft.DestinationID,
		Form:          draft.Form,
	})
}
