package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"travelexplorer/internal/booking"
	"travelexplorer/internal/models/db_models"
)

var errStore = errors.New("connection refused")

type fakeDestinationRepo struct {
	rows []db_models.Destination
	err  error
}

func (f *fakeDestinationRepo) ListActive(ctx context.Context) ([]db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeDestinationRepo) ListTopRated(ctx context.Context, limit int) ([]db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func (f *fakeDestinationRepo) FindActiveByID(ctx context.Context, id string) (*db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID.String() == id && f.rows[i].IsActive {
			d := f.rows[i]
			return &d, nil
		}
	}
	return nil, nil
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	created   []*db_models.Booking
	createErr error
	findErr   error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *db_models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) FindByIDForUser(ctx context.Context, id, userID string) (*db_models.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.created {
		if b.ID.String() == id && b.UserID.String() == userID {
			out := *b
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Booking
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID.String() == userID {
			out = append(out, *f.created[i])
		}
	}
	total := int64(len(out))
	start := (page - 1) * pageSize
	if start >= len(out) {
		return []db_models.Booking{}, total, nil
	}
	end := start + pageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeBookingRepo) OwnsBooking(ctx context.Context, bookingID, userID, destinationID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.created {
		if b.ID.String() == bookingID && b.UserID.String() == userID && b.DestinationID.String() == destinationID {
			return true, nil
		}
	}
	return false, nil
}

type fakeAccountRepo struct {
	accounts   map[string]*db_models.Account
	profileErr error
	createErr  error
	findErr    error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) CreateWithProfile(ctx context.Context, account *db_models.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	account.ID = uuid.New()
	if account.Profile == nil {
		account.Profile = &db_models.Profile{}
	}
	account.Profile.AccountID = account.ID
	f.accounts[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	a, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindProfile(ctx context.Context, accountID string) (*db_models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	a, ok := f.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return a.Profile, nil
}

func (f *fakeAccountRepo) UpdatePreferences(ctx context.Context, accountID string, prefs db_models.Preferences) (*db_models.Profile, error) {
	a, ok := f.accounts[accountID]
	if !ok || a.Profile == nil {
		return nil, nil
	}
	a.Profile.Preferences = datatypes.NewJSONType(prefs)
	return a.Profile, nil
}

type fakeMail struct {
	mu           sync.Mutex
	err          error
	bookings     []BookingMail
	acknowledged []string
}

func (f *fakeMail) SendBookingConfirmation(to string, data BookingMail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, data)
	return f.err
}

func (f *fakeMail) SendContactAcknowledgement(to, name, subject string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acknowledged = append(f.acknowledged, to)
	return f.err
}

type fixedContacts struct {
	contact booking.ContactInfo
}

func (f fixedContacts) ContactFor(ctx context.Context, userID string) booking.ContactInfo {
	return f.contact
}
