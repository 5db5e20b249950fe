package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelexplorer/internal/config"
	"travelexplorer/internal/infra"
	"travelexplorer/pkg/logger"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log logger.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return infra.PingPostgresql(ctx, db)
		},
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})

	return db, nil
}
