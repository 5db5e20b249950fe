package controllers_fx

import (
	"go.uber.org/fx"
	"travelexplorer/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewPageController))
