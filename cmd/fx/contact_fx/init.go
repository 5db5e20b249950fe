package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelexplorer/internal/repositories"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/logger"
)

var Module = fx.Provide(
	provideContactRepo, provideContactService, providePageService)

func provideContactRepo(db *gorm.DB) repositories.ContactRepository {
	return repositories.NewContactRepository(db)
}

func provideContactService(contactRepo repositories.ContactRepository, mail services.IMailService, log logger.Logger) services.ContactServiceInterface {
	return services.NewContactService(contactRepo, mail, log)
}

func providePageService(destinations services.DestinationServiceInterface) services.PageServiceInterface {
	return services.NewPageService(destinations)
}
