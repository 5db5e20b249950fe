package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelexplorer/internal/repositories"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/logger"
	mem "travelexplorer/pkg/memcache"
	"travelexplorer/pkg/metrics"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	destinationRepo repositories.DestinationRepository,
	sessions mem.SessionStore,
	contacts services.ContactProvider,
	mail services.IMailService,
	m *metrics.Metrics,
	log logger.Logger,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, destinationRepo, sessions, contacts, mail, m, log)
}
