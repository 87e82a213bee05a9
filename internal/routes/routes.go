package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	"github.com/BruksfildServices01/detailing-scheduler/internal/config"
	"github.com/BruksfildServices01/detailing-scheduler/internal/handlers"
	"github.com/BruksfildServices01/detailing-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/detailing-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/detailing-scheduler/internal/metrics"
	"github.com/BruksfildServices01/detailing-scheduler/internal/middleware"
	"github.com/BruksfildServices01/detailing-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/detailing-scheduler/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/detailing-scheduler/internal/usecase/auth"
	ucContact "github.com/BruksfildServices01/detailing-scheduler/internal/usecase/contact"
	"github.com/BruksfildServices01/detailing-scheduler/internal/validators"
)

// Infra carries the process-wide singletons built in main.
type Infra struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Log         *zap.Logger
	Metrics     *metrics.Metrics
	AuditLogger *audit.Logger
	Audit       *audit.Dispatcher
	Auth        *ucAuth.Service
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// INFRA
	// ======================================================
	loc := timezone.Location(cfg.BusinessTimezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(infra.DB)
	contactRepo := infraRepo.NewContactGormRepository(infra.DB)
	userRepo := infraRepo.NewUserGormRepository(infra.DB)

	daySnapshots := cache.NewDaySnapshotCache(infra.Redis, cfg.AvailabilityCacheTTL, infra.Log)

	var emailCheck func(string) bool
	if cfg.ValidateEmailDomain {
		emailCheck = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		daySnapshots,
		infra.Metrics,
		loc,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		daySnapshots,
		infra.Audit,
		infra.Metrics,
		infra.Log,
		ucAppointment.BookingPolicy{
			Location:         loc,
			WindowDays:       cfg.BookingWindowDays,
			EmailDomainCheck: emailCheck,
		},
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo, loc)
	listAllAppointmentsUC := ucAppointment.NewListAllAppointments(appointmentRepo)

	createContactUC := ucContact.NewCreateContact(contactRepo, infra.Audit, infra.Log, emailCheck)
	signupMembershipUC := ucContact.NewSignupMembership(contactRepo, infra.Audit, infra.Log, loc, emailCheck)
	listContactsUC := ucContact.NewListContacts(contactRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		getAvailabilityUC,
		createAppointmentUC,
		listAppointmentsByDateUC,
		listAllAppointmentsUC,
	)
	catalogHandler := handlers.NewCatalogHandler(loc, cfg.BookingWindowDays)
	contactHandler := handlers.NewContactHandler(createContactUC, signupMembershipUC, listContactsUC)
	authHandler := handlers.NewAuthHandler(infra.Auth, userRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(infra.AuditLogger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, infra.Log)
	limited := limiter.Middleware()

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/packages", catalogHandler.Packages)
		api.GET("/memberships", catalogHandler.Memberships)
		api.GET("/booking-dates", catalogHandler.BookingDates)

		api.GET("/availability", appointmentHandler.Availability)
		api.GET("/appointments/:date", appointmentHandler.ListByDate)
		api.POST("/appointments", limited, appointmentHandler.Create)

		api.POST("/contact", limited, contactHandler.Create)
		api.POST("/membership-signup", limited, contactHandler.SignupMembership)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", limited, authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(infra.Auth))
		{
			admin.GET("/auth/me", authHandler.Me)
			admin.GET("/contacts", contactHandler.List)
			admin.GET("/appointments", appointmentHandler.ListAll)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
