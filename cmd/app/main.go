package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
	"travelexplorer/cmd/fx/account_fx"
	"travelexplorer/cmd/fx/booking_fx"
	"travelexplorer/cmd/fx/config_fx"
	"travelexplorer/cmd/fx/contact_fx"
	"travelexplorer/cmd/fx/controllers_fx"
	"travelexplorer/cmd/fx/db_fx"
	"travelexplorer/cmd/fx/destination_fx"
	"travelexplorer/cmd/fx/mail_fx"
	"travelexplorer/cmd/fx/memcache_fx"
	"travelexplorer/cmd/fx/review_fx"
	"travelexplorer/internal/api/controllers"
	"travelexplorer/internal/config"
	"travelexplorer/internal/infra"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/pkg/logger"
	mem "travelexplorer/pkg/memcache"
	"travelexplorer/pkg/metrics"
	"travelexplorer/pkg/middleware"
	"travelexplorer/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(l *logger.ZapLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Desugar()}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		destination_fx.Module,
		booking_fx.Module,
		review_fx.Module,
		contact_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, zl *logger.ZapLogger, log logger.Logger) {
	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.TraceIDHeader}),
		handlers.ExposedHeaders([]string{middleware.TraceIDHeader}),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.CompressHandler(cors(engine)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			go func() {
				log.Info("Starting HTTP server", "addr", srv.Addr)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to serve HTTP", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			err := srv.Shutdown(ctx)
			_ = zl.Sync()
			return err
		},
	})
}

type RouterParams struct {
	fx.In

	Config      *config.Config
	Log         logger.Logger
	Metrics     *metrics.Metrics
	JWT         *utils.JWTManager
	Revoked     mem.RevokedTokenStore
	DB          *gorm.DB
	Account     *controllers.AccountController
	Destination *controllers.DestinationController
	Booking     *controllers.BookingController
	Session     *controllers.SessionController
	Review      *controllers.ReviewController
	Page        *controllers.PageController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(p.Metrics.GinMiddleware())

	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := infra.PingPostgresql(ctx, p.DB); err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.JWT, p.Revoked)

	accounts := r.Group("/accounts")
	accounts.POST("/register", p.Account.Register)
	accounts.POST("/login", p.Account.Login)
	accounts.POST("/logout", auth, p.Account.Logout)
	accounts.GET("/me", auth, p.Account.Me)
	accounts.PUT("/me/preferences", auth, p.Account.UpdatePreferences)

	destinations := r.Group("/destinations")
	destinations.GET("", p.Destination.ListDestinations)
	destinations.GET("/facets", p.Destination.GetFacets)
	destinations.GET("/:id", p.Destination.GetDestination)
	destinations.GET("/:id/reviews", p.Review.ListReviews)

	bookings := r.Group("/bookings", auth)
	bookings.POST("", p.Booking.CreateBooking)
	bookings.GET("", p.Booking.ListMyBookings)
	bookings.GET("/:id/confirmation", p.Booking.GetConfirmation)

	session := r.Group("/session", auth)
	session.POST("/booking", p.Session.StartDraft)
	session.GET("/booking", p.Session.GetDraft)
	session.PUT("/booking", p.Session.ReplaceDraft)
	session.PATCH("/booking", p.Session.UpdateDraft)
	session.DELETE("/booking", p.Session.DiscardDraft)
	session.POST("/booking/submit", p.Session.SubmitDraft)
	session.GET("/filters", p.Session.GetFilters)
	session.PUT("/filters", p.Session.SaveFilters)
	session.DELETE("/filters", p.Session.ClearFilters)

	r.POST("/reviews", auth, p.Review.AddReview)

	pages := r.Group("/pages")
	pages.GET("/about", p.Page.About)
	pages.GET("/home", p.Page.Home)
	pages.GET("/contact", p.Page.ContactInfo)

	r.POST("/contact", p.Page.SubmitContact)
	r.GET("/contact/messages", auth, middleware.RoleMiddleware(db_models.RoleAdmin), p.Page.ListContactMessages)
}
