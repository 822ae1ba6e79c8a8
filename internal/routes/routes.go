package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/ai"
	"github.com/freshcut-app/freshcut-api/internal/catalog"
	"github.com/freshcut-app/freshcut-api/internal/chatlog"
	"github.com/freshcut-app/freshcut-api/internal/config"
	domain "github.com/freshcut-app/freshcut-api/internal/domain/booking"
	"github.com/freshcut-app/freshcut-api/internal/handlers"
	infraRepo "github.com/freshcut-app/freshcut-api/internal/infra/repository"
	"github.com/freshcut-app/freshcut-api/internal/middleware"
	"github.com/freshcut-app/freshcut-api/internal/storage"
	"github.com/freshcut-app/freshcut-api/internal/token"
	ucBooking "github.com/freshcut-app/freshcut-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, avatars storage.AvatarStore) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	tokens := token.New(cfg.JWTSecret, cfg.JWTTTL)

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Identity(tokens))
	r.Use(middleware.Authorize(middleware.DefaultPolicy()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	catalogSvc := catalog.NewService(catalogRepo)

	barberLocks := domain.NewBarberLocks()

	chatStore := chatlog.NewGormStore(db)
	chatDispatcher := chatlog.NewDispatcher(chatStore)
	aiClient := ai.NewClient(cfg.GeminiAPIKey)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, barberLocks)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, barberLocks)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)
	profileHandler := handlers.NewProfileHandler(db, avatars)
	barberHandler := handlers.NewBarberHandler(db, listBookingsUC)
	adminCatalogHandler := handlers.NewAdminCatalogHandler(db)
	adminUserHandler := handlers.NewAdminUserHandler(db)
	aiHandler := handlers.NewAIHandler(db, aiClient, chatDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		completeBookingUC,
		deleteBookingUC,
		listBookingsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
			auth.POST("/forgot", authHandler.Forgot)
			auth.POST("/reset", authHandler.Reset)
		}

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/barbers", catalogHandler.Barbers)
		api.GET("/services", catalogHandler.Services)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bookingHandler.List)
			bookings.GET("/my", bookingHandler.My)
			bookings.POST("", bookingHandler.Create)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id", bookingHandler.Update)
			bookings.POST("/:id/cancel", bookingHandler.Cancel)
			bookings.POST("/:id/complete", bookingHandler.Complete)
			bookings.DELETE("/:id", bookingHandler.Delete)
		}

		// ------------------------------
		// BARBER SELF-SERVICE
		// ------------------------------
		barber := api.Group("/barber")
		{
			barber.GET("/me", barberHandler.Me)
			barber.PUT("/me", barberHandler.UpdateMe)
			barber.GET("/bookings", barberHandler.Bookings)
			barber.GET("/schedules", barberHandler.Schedules)
			barber.POST("/schedules", barberHandler.CreateSchedule)
			barber.PUT("/schedules/:id", barberHandler.UpdateSchedule)
			barber.DELETE("/schedules/:id", barberHandler.DeleteSchedule)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		{
			admin.GET("/services", adminCatalogHandler.ListServices)
			admin.POST("/services", adminCatalogHandler.CreateService)
			admin.PUT("/services/:id", adminCatalogHandler.UpdateService)
			admin.DELETE("/services/:id", adminCatalogHandler.DeleteService)

			admin.GET("/barbers", adminCatalogHandler.ListBarbers)
			admin.POST("/barbers", adminCatalogHandler.CreateBarber)
			admin.PUT("/barbers/:id", adminCatalogHandler.UpdateBarber)
			admin.DELETE("/barbers/:id", adminCatalogHandler.DeleteBarber)

			admin.GET("/schedules", adminCatalogHandler.ListSchedules)
			admin.POST("/schedules", adminCatalogHandler.CreateSchedule)
			admin.DELETE("/schedules/:id", adminCatalogHandler.DeleteSchedule)

			admin.GET("/users", adminUserHandler.List)
			admin.GET("/users/by-email", adminUserHandler.GetByEmail)
			admin.DELETE("/users/:id", adminUserHandler.Delete)

			admin.DELETE("/bookings/:id", bookingHandler.Delete)
		}

		// ------------------------------
		// PROFILE
		// ------------------------------
		profile := api.Group("/profile")
		{
			profile.GET("/me", profileHandler.Me)
			profile.PUT("/me", profileHandler.UpdateMe)
			profile.POST("/avatar", profileHandler.UploadAvatar)
			profile.GET("/avatar/:userId", profileHandler.ServeAvatar)
		}

		// ------------------------------
		// AI CHAT
		// ------------------------------
		aiGroup := api.Group("/ai")
		{
			aiGroup.POST("/chat", aiHandler.Chat)
			aiGroup.GET("/history", aiHandler.History)
			aiGroup.POST("/save-latest", aiHandler.SaveLatest)
		}
	}
}
