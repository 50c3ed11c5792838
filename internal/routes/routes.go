package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
	"github.com/BruksfildServices01/barbershop-booking/internal/storage"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	st *state.Manager,
	images *storage.ImageStorage,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(logger)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(st)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		st,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		st,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg, auditDispatcher)

	publicHandler := handlers.NewPublicHandler(
		st,
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
		cfg.ShopTimezone,
	)

	serviceHandler := handlers.NewServiceHandler(st, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(st, images, auditDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(st, auditDispatcher)
	siteContentHandler := handlers.NewSiteContentHandler(st, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(st, cancelAppointmentUC, cfg.ShopTimezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (fluxo de reserva do cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/content", publicHandler.SiteContent)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.DELETE("/appointments/:id", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel admin)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)
			secured.PATCH("/me/barbers/:id", barberHandler.Update)
			secured.DELETE("/me/barbers/:id", barberHandler.Delete)
			secured.POST("/me/barbers/:id/image", barberHandler.UploadImage)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/site-content", siteContentHandler.Get)
			secured.PUT("/me/site-content", siteContentHandler.Update)

			secured.PUT("/me/password", authHandler.ChangePassword)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
