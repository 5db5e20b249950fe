package mail_fx

import (
	"go.uber.org/fx"
	"travelexplorer/internal/config"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/logger"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, log logger.Logger) services.IMailService {
	if cfg.SMTPHost == "" {
		log.Warn("SMTP_HOST not set, outgoing mail is disabled")
		return services.NewLogMailService(log)
	}

	log.Info("SMTP mail service configured", "host", cfg.SMTPHost, "port", cfg.SMTPPort)
	return services.NewSMTPMailService(services.SMTPConfigFrom(cfg))
}
