package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelexplorer/internal/repositories"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/logger"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	destinationRepo repositories.DestinationRepository,
	bookingRepo repositories.BookingRepository,
	log logger.Logger,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, destinationRepo, bookingRepo, log)
}
