package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/washpoint/carwash-api/internal/audit"
	"github.com/washpoint/carwash-api/internal/auth"
	"github.com/washpoint/carwash-api/internal/config"
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/handlers"
	infraRepo "github.com/washpoint/carwash-api/internal/infra/repository"
	"github.com/washpoint/carwash-api/internal/middleware"
	"github.com/washpoint/carwash-api/internal/storage"
	ucAppointment "github.com/washpoint/carwash-api/internal/usecase/appointment"
	ucFeedback "github.com/washpoint/carwash-api/internal/usecase/feedback"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	tokens *auth.TokenService,
	resolver *auth.Resolver,
	store storage.ObjectStore,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	feedbackRepo := infraRepo.NewFeedbackGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	claimUC := ucAppointment.NewClaimAppointment(appointmentRepo, auditDispatcher)
	getUC := ucAppointment.NewGetAppointment(appointmentRepo)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	statsUC := ucAppointment.NewAppointmentStats(appointmentRepo, cfg.Timezone)

	feedbackService := ucFeedback.NewService(feedbackRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, log)
	meHandler := handlers.NewMeHandler()

	domicileHandler := handlers.NewAppointmentDomicileHandler(
		createUC, claimUC, getUC, updateUC, deleteUC, listUC, log,
	)
	locationHandler := handlers.NewAppointmentLocationHandler(
		createUC, getUC, updateUC, deleteUC, listUC, log,
	)

	adminHandler := handlers.NewAdminHandler(db, statsUC, auditDispatcher, log)
	employeeHandler := handlers.NewEmployeeHandler(db, appointmentRepo, store, log)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/refresh", authHandler.Refresh)
		api.POST("/auth/:role/login", authHandler.Login)
		api.POST("/auth/:role/register", authHandler.Register)

		// ------------------------------
		// PUBLIC FEEDBACK
		// ------------------------------
		api.GET("/feedback/all", feedbackHandler.ListPublic)
		api.GET("/ratings/extern_employee/:id", feedbackHandler.ListRatings)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens, resolver))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/user/me", meHandler.GetMe)

			// ------------------------------
			// DOMICILE APPOINTMENTS
			// ------------------------------
			domicile := secured.Group("/appointments_domicile")
			{
				domicile.POST("/create",
					middleware.RequireRole(principal.RoleClient),
					domicileHandler.Create,
				)
				domicile.GET("/get_all",
					middleware.RequireRole(principal.RoleExternEmployee),
					domicileHandler.GetAll,
				)
				domicile.POST("/:id/claim",
					middleware.RequireRole(principal.RoleExternEmployee),
					domicileHandler.Claim,
				)
				domicile.GET("/mine", domicileHandler.Mine)
				domicile.GET("/:id", domicileHandler.Get)
				domicile.PUT("/:id", domicileHandler.Update)
				domicile.DELETE("/:id", domicileHandler.Delete)
			}

			// ------------------------------
			// LOCATION APPOINTMENTS
			// ------------------------------
			location := secured.Group("/appointments_location")
			{
				location.POST("/create",
					middleware.RequireRole(principal.RoleClient),
					locationHandler.Create,
				)
				location.GET("/get_all",
					middleware.RequireRole(principal.RoleInternEmployee),
					locationHandler.List,
				)
				location.GET("/:id", locationHandler.Get)
				location.PUT("/:id", locationHandler.Update)
				location.DELETE("/:id", locationHandler.Delete)
			}

			// ------------------------------
			// EMPLOYEE SELF-SERVICE
			// ------------------------------
			secured.GET("/extern_employee/details",
				middleware.RequireRole(principal.RoleExternEmployee),
				employeeHandler.ExternDetails,
			)
			secured.POST("/extern_employee/profile_image",
				middleware.RequireRole(principal.RoleExternEmployee),
				employeeHandler.UploadExternProfileImage,
			)
			secured.GET("/intern_employee/details",
				middleware.RequireRole(principal.RoleInternEmployee),
				employeeHandler.InternDetails,
			)
			secured.POST("/intern_employee/profile_image",
				middleware.RequireRole(principal.RoleInternEmployee),
				employeeHandler.UploadInternProfileImage,
			)

			// ------------------------------
			// FEEDBACK & RATINGS (client)
			// ------------------------------
			secured.POST("/feedback",
				middleware.RequireRole(principal.RoleClient),
				feedbackHandler.Submit,
			)
			secured.POST("/ratings",
				middleware.RequireRole(principal.RoleClient),
				feedbackHandler.SubmitRating,
			)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(principal.RoleAdmin))
			{
				admin.GET("/extern_employees", adminHandler.ListExternEmployees)
				admin.GET("/extern_employee/:id", adminHandler.GetExternEmployee)
				admin.PUT("/extern_employee/:id", adminHandler.UpdateExternEmployee)
				admin.DELETE("/extern_employee/:id", adminHandler.DeleteExternEmployee)

				admin.GET("/intern_employees", adminHandler.ListInternEmployees)
				admin.GET("/intern_employee/:id", adminHandler.GetInternEmployee)
				admin.PUT("/intern_employee/:id", adminHandler.UpdateInternEmployee)
				admin.DELETE("/intern_employee/:id", adminHandler.DeleteInternEmployee)

				admin.GET("/clients", adminHandler.ListClients)
				admin.GET("/client/:id", adminHandler.GetClient)
				admin.DELETE("/client/:id", adminHandler.DeleteClient)

				admin.GET("/appointments/stats/:kind", adminHandler.Stats)
				admin.GET("/appointments/revenue/:kind", adminHandler.Revenue)

				admin.GET("/feedbacks", feedbackHandler.ListAdmin)
				admin.GET("/feedbacks/summary", feedbackHandler.Summary)
				admin.PUT("/feedbacks/:id/approve", feedbackHandler.Approve)
				admin.DELETE("/feedbacks/:id", feedbackHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
