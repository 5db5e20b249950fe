package config_fx

import (
	"go.uber.org/fx"
	"travelexplorer/internal/config"
	"travelexplorer/pkg/logger"
	"travelexplorer/pkg/metrics"
	"travelexplorer/pkg/utils"
)

var Module = fx.Provide(
	config.LoadConfig, provideZapLogger, provideLogger, provideMetrics, provideJWTManager)

func provideZapLogger(cfg *config.Config) *logger.ZapLogger {
	return logger.NewLogger(cfg.LogLevel)
}

func provideLogger(l *logger.ZapLogger) logger.Logger {
	return l.With("service", "travel-explorer")
}

func provideMetrics() *metrics.Metrics {
	return metrics.NewMetrics("travel")
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}
