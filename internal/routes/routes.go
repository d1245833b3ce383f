package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goldblade/barbershop-api/internal/audit"
	"github.com/goldblade/barbershop-api/internal/config"
	"github.com/goldblade/barbershop-api/internal/events"
	"github.com/goldblade/barbershop-api/internal/handlers"
	infraRepo "github.com/goldblade/barbershop-api/internal/infra/repository"
	"github.com/goldblade/barbershop-api/internal/middleware"
	"github.com/goldblade/barbershop-api/internal/payments"
	"github.com/goldblade/barbershop-api/internal/storage"
	ucBooking "github.com/goldblade/barbershop-api/internal/usecase/booking"
)

// Deps agrupa os colaboradores opcionais montados no main: sem Redis o
// notifier é nop, sem bucket/token os recursos ficam indisponíveis (503).
type Deps struct {
	Notifier events.Notifier
	Uploader *storage.Uploader
	Checkout *payments.Checkout
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	notifier := deps.Notifier
	if notifier == nil {
		notifier = events.NopNotifier{}
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailabilityUseCase(bookingRepo)
	createBookingUC := ucBooking.NewCreateBookingUseCase(bookingRepo, notifier)
	changeStatusUC := ucBooking.NewChangeStatusUseCase(bookingRepo, auditDispatcher, notifier)
	remindClientsUC := ucBooking.NewRemindClientsUseCase(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC, deps.Checkout)
	authHandler := handlers.NewAuthHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(db, changeStatusUC, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, deps.Uploader, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db, remindClientsUC)
	blockedDateHandler := handlers.NewBlockedDateHandler(db, auditDispatcher)
	galleryHandler := handlers.NewGalleryHandler(db, deps.Uploader)
	reviewHandler := handlers.NewReviewHandler(db)
	expenseHandler := handlers.NewExpenseHandler(db)
	subscriptionHandler := handlers.NewSubscriptionHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/site", publicHandler.GetSite)
			publicAPI.GET("/availability", publicHandler.GetAvailability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.POST("/reviews", publicHandler.CreateReview)
			publicAPI.POST("/subscriptions/:id/checkout", publicHandler.SubscriptionCheckout)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (ADMIN)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		admin.Use(middleware.RequireRole(db, "admin"))
		{
			admin.GET("/me", authHandler.Me)

			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/:id", appointmentHandler.Get)
			admin.PATCH("/appointments/:id", appointmentHandler.Update)
			admin.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.POST("/barbers/:id/photo", barberHandler.UploadPhoto)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/clients", clientHandler.List)
			admin.GET("/clients/:id/history", clientHandler.History)
			admin.GET("/clients/reminders", clientHandler.Reminders)

			admin.GET("/blocked-dates", blockedDateHandler.List)
			admin.POST("/blocked-dates", blockedDateHandler.Create)
			admin.DELETE("/blocked-dates/:id", blockedDateHandler.Delete)

			admin.GET("/gallery", galleryHandler.List)
			admin.POST("/gallery", galleryHandler.Upload)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)

			admin.GET("/reviews", reviewHandler.List)
			admin.PATCH("/reviews/:id", reviewHandler.Moderate)
			admin.DELETE("/reviews/:id", reviewHandler.Delete)

			admin.GET("/expenses", expenseHandler.List)
			admin.POST("/expenses", expenseHandler.Create)
			admin.PATCH("/expenses/:id", expenseHandler.Update)
			admin.DELETE("/expenses/:id", expenseHandler.Delete)

			admin.GET("/subscriptions", subscriptionHandler.List)
			admin.POST("/subscriptions", subscriptionHandler.Create)
			admin.PATCH("/subscriptions/:id", subscriptionHandler.Update)
			admin.DELETE("/subscriptions/:id", subscriptionHandler.Delete)

			admin.GET("/settings", settingsHandler.Get)
			admin.PATCH("/settings", settingsHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
