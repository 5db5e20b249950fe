package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/pkg/logger"
	"travelexplorer/pkg/utils"
)

type fakeContactRepo struct {
	stored []db_models.ContactMessage
	err    error
}

func (f *fakeContactRepo) Create(ctx context.Context, message *db_models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	message.ID = uuid.New()
	f.stored = append(f.stored, *message)
	return nil
}

func (f *fakeContactRepo) List(ctx context.Context, page, pageSize int) ([]db_models.ContactMessage, error) {
	return f.stored, f.err
}

func contactRequest() request_models.ContactRequest {
	return request_models.ContactRequest{
		Name:    " Jo Doe ",
		Email:   "jo@example.com",
		Subject: "Group discount",
		Message: "Do you offer discounts for groups of ten?",
	}
}

func TestSubmitMessage(t *testing.T) {
	repo := &fakeContactRepo{}
	mail := &fakeMail{}
	svc := NewContactService(repo, mail, logger.NewNopLogger())

	accepted, err := svc.SubmitMessage(context.Background(), contactRequest())
	require.NoError(t, err)
	require.Len(t, repo.stored, 1)
	assert.Equal(t, repo.stored[0].ID.String(), accepted.ID)
	assert.Equal(t, "Jo Doe", repo.stored[0].Name)
	assert.Equal(t, []string{"jo@example.com"}, mail.acknowledged)

	messages, err := svc.ListMessages(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestSubmitMessage_MailFailureIsTolerated(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, &fakeMail{err: errors.New("smtp down")}, logger.NewNopLogger())

	_, err := svc.SubmitMessage(context.Background(), contactRequest())
	assert.NoError(t, err)
}

func TestSubmitMessage_StoreFailure(t *testing.T) {
	mail := &fakeMail{}
	svc := NewContactService(&fakeContactRepo{err: errStore}, mail, logger.NewNopLogger())

	_, err := svc.SubmitMessage(context.Background(), contactRequest())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, mail.acknowledged)
}
