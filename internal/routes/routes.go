package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PedroGomesFR/myPlanning/internal/audit"
	"github.com/PedroGomesFR/myPlanning/internal/cache"
	"github.com/PedroGomesFR/myPlanning/internal/config"
	"github.com/PedroGomesFR/myPlanning/internal/handlers"
	infraRepo "github.com/PedroGomesFR/myPlanning/internal/infra/repository"
	"github.com/PedroGomesFR/myPlanning/internal/middleware"
	ucAvailability "github.com/PedroGomesFR/myPlanning/internal/usecase/availability"
	ucBooking "github.com/PedroGomesFR/myPlanning/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	settingsRepo := infraRepo.NewSettingsGormRepository(db)

	settingsCache := cache.NewSettingsCache(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES — AVAILABILITY
	// ======================================================
	getSettingsUC := ucAvailability.NewGetSettings(settingsRepo, settingsCache)
	updateSettingsUC := ucAvailability.NewUpdateSettings(settingsRepo, settingsCache, auditDispatcher)
	getSlotsUC := ucAvailability.NewGetSlots(getSettingsUC, bookingRepo)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListMyBookings(bookingRepo)
	statsUC := ucBooking.NewGetStats(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		getSettingsUC,
		updateSettingsUC,
		getSlotsUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		deleteBookingUC,
		listBookingsUC,
		statsUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services/categories", serviceHandler.Categories)

		api.GET("/availability/settings/:professionalId", availabilityHandler.GetSettings)
		api.GET("/availability/slots/:professionalId", availabilityHandler.GetSlots)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services/professional/:professionalId", serviceHandler.ListByProfessional)
			secured.GET("/services/my-services", serviceHandler.MyServices)
			secured.POST("/services/add", serviceHandler.Create)
			secured.PUT("/services/update/:id", serviceHandler.Update)
			secured.DELETE("/services/delete/:id", serviceHandler.Delete)

			secured.POST("/availability/settings", availabilityHandler.UpdateSettings)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings/create", bookingHandler.Create)
			secured.GET("/bookings/my-bookings", bookingHandler.MyBookings)
			secured.PUT("/bookings/update-status/:id", bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/delete/:id", bookingHandler.Delete)
			secured.GET("/bookings/stats", bookingHandler.Stats)
		}
	}
}
