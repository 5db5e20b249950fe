package services

import (
	"context"
	"strings"

	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/models/response_models"
	"travelexplorer/internal/repositories"
	"travelexplorer/pkg/logger"
	"travelexplorer/pkg/utils"
)

type ContactServiceInterface interface {
	SubmitMessage(ctx context.Context, request request_models.ContactRequest) (response_models.ContactAccepted, error)
	ListMessages(ctx context.Context, page, pageSize int) ([]response_models.ContactMessage, error)
}

type ContactService struct {
	contactRepo repositories.ContactRepository
	mail        IMailService
	log         logger.Logger
}

func NewContactService(contactRepo repositories.ContactRepository, mail IMailService, log logger.Logger) ContactServiceInterface {
	return &ContactService{
		contactRepo: contactRepo,
		mail:        mail,
		log:         log,
	}
}

func (s *ContactService) SubmitMessage(ctx context.Context, request request_models.ContactRequest) (response_models.ContactAccepted, error) {
	message := &db_models.ContactMessage{
		Name:    strings.TrimSpace(request.Name),
		Email:   strings.TrimSpace(request.Email),
		Subject: strings.TrimSpace(request.Subject),
		Message: strings.TrimSpace(request.Message),
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		s.log.Error("Error storing contact message", "error", err)
		return response_models.ContactAccepted{}, utils.ErrDatabaseError
	}

	if err := s.mail.SendContactAcknowledgement(message.Email, message.Name, message.Subject); err != nil {
		s.log.Warn("Error sending contact acknowledgement", "message_id", message.ID.String(), "error", err)
	}

	return response_models.ContactAccepted{ID: message.ID.String()}, nil
}

func (s *ContactService) ListMessages(ctx context.Context, page, pageSize int) ([]response_models.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx, page, pageSize)
	if err != nil {
		s.log.Error("Error listing contact messages", "error", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ContactMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, response_models.ContactMessage{
			ID:        m.ID.String(),
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: utils.FormatRFC3339(m.CreatedTime()),
		})
	}
	return out, nil
}
