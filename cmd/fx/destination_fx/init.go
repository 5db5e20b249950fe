package destination_fx

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
	provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(
	destinationRepo repositories.DestinationRepository,
	sessions mem.SessionStore,
	m *metrics.Metrics,
	log logger.Logger,
) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, sessions, m, log)
}
