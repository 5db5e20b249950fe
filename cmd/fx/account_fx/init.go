package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelexplorer/internal/repositories"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/logger"
	mem "travelexplorer/pkg/memcache"
	"travelexplorer/pkg/metrics"
	"travelexplorer/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideContactProvider)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	jwt *utils.JWTManager,
	revoked mem.RevokedTokenStore,
	sessions mem.SessionStore,
	m *metrics.Metrics,
	log logger.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwt, revoked, sessions, m, log)
}

func provideContactProvider(accountService services.AccountServiceInterface) services.ContactProvider {
	return accountService
}
