package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/berberbook/booking-api/internal/audit"
	"github.com/berberbook/booking-api/internal/config"
	"github.com/berberbook/booking-api/internal/handlers"
	infraRepo "github.com/berberbook/booking-api/internal/infra/repository"
	"github.com/berberbook/booking-api/internal/middleware"
	"github.com/berberbook/booking-api/internal/models"
	"github.com/berberbook/booking-api/internal/session"
	ucAppointment "github.com/berberbook/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.NewRecorder(db))

	var revocations session.RevocationStore
	if cfg.RedisURL != "" {
		store, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis")
		}
		revocations = store
	} else {
		log.Warn().Msg("REDIS_URL not set, using in-process session revocation")
		revocations = session.NewMemoryStore()
	}

	sessions := session.NewManager(cfg.JWTSecret, cfg.TokenTTL, revocations)

	// ======================================================
	// USE CASES — APPOINTMENT LIFECYCLE
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(repo, auditDispatcher)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(repo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListMyAppointments(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(repo, sessions, auditDispatcher)
	meHandler := handlers.NewMeHandler(repo)
	adminHandler := handlers.NewAdminHandler(repo, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(repo)
	serviceHandler := handlers.NewServiceHandler(repo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// SESSION-PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.Auth(sessions))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/dashboard", meHandler.Dashboard)

			// Browse surface for the booking view.
			secured.GET("/barbers", barberHandler.List)
			secured.GET("/barbers/:id/services", barberHandler.Services)

			// Appointment ledger; ownership checks live in the usecases.
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// CUSTOMER
			// ------------------------------
			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("/appointments", appointmentHandler.Create)
			}

			// ------------------------------
			// BARBER
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				barber.POST("/services", serviceHandler.Create)
				barber.GET("/services", serviceHandler.ListMine)
				barber.PATCH("/services/:id/price", serviceHandler.UpdatePrice)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/barbers", adminHandler.AddBarber)
				admin.GET("/barbers", adminHandler.ListBarbers)
				admin.DELETE("/barbers/:id", adminHandler.DeleteBarber)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
