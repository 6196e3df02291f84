package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/audit"
	"github.com/BruksfildServices01/dental-admin/internal/dashboard"
	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/forms"
	"github.com/BruksfildServices01/dental-admin/internal/handlers"
	"github.com/BruksfildServices01/dental-admin/internal/middleware"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/observability"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/actions"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/lists"
	"github.com/BruksfildServices01/dental-admin/web"
)

// Deps are the singletons the routes are wired against.
type Deps struct {
	Repo        domain.Repository
	Feed        notify.Feed
	Audit       forms.AuditDispatcher
	AuditLog    *audit.Recorder
	Metrics     *observability.Metrics
	Logger      *slog.Logger
	Location    *time.Location
	SubmitDelay time.Duration
	Clock       func() time.Time

	RateLimiter  *middleware.RateLimiter
	CORSOrigins  []string
	HealthChecks map[string]observability.HealthCheck
}

func RegisterRoutes(r *gin.Engine, d Deps) error {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORSMiddleware(d.CORSOrigins),
	)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware("/metrics", "/health"))
	}
	if d.RateLimiter != nil {
		r.Use(middleware.RateLimit(d.RateLimiter))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	// ======================================================
	// INFRA
	// ======================================================
	feed := d.Feed
	var formObserver forms.Observer
	var actionObserver actions.Observer
	if d.Metrics != nil {
		feed = notify.NewObserved(d.Feed, d.Metrics.ObserveNotification)
		formObserver = d.Metrics
		actionObserver = d.Metrics
	}

	registry := forms.NewRegistry(d.Repo, forms.Deps{
		Notifier: feed,
		Audit:    d.Audit,
		Logger:   d.Logger,
		Observer: formObserver,
		Latency:  d.SubmitDelay,
	}, d.Location)
	if d.Clock != nil {
		registry.WithClock(d.Clock)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	listAppointmentsUC := lists.NewListAppointments(d.Repo)
	listDentistsUC := lists.NewListDentists(d.Repo)
	listUsersUC := lists.NewListUsers(d.Repo)

	rowActionUC := actions.NewRunRowAction(d.Repo, feed, d.Audit, actionObserver)

	dashboardSvc := dashboard.NewService(d.Repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(listAppointmentsUC, rowActionUC, registry, d.Location)
	dentistHandler := handlers.NewDentistHandler(listDentistsUC, rowActionUC, registry, d.Location)
	userHandler := handlers.NewUserHandler(listUsersUC, rowActionUC, registry, d.Location)
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc)
	notificationHandler := handlers.NewNotificationHandler(feed)

	webHandler := handlers.NewWebHandler(listAppointmentsUC, listDentistsUC, listUsersUC, dashboardSvc, feed, d.Location, d.Logger)
	webFormHandler := handlers.NewWebFormHandler(webHandler, registry, rowActionUC)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", observability.HealthHandler(2*time.Second, d.HealthChecks))
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	if d.AuditLog != nil {
		r.GET("/api/audit-logs", handlers.NewAuditLogsHandler(d.AuditLog).List)
	}

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Dashboard)

	r.GET("/appointments", webHandler.Appointments)
	r.GET("/appointments/new", webFormHandler.NewAppointment)
	r.POST("/appointments/new", webFormHandler.SubmitAppointment)
	r.POST("/appointments/:id/actions/:action", webFormHandler.RowAction(domain.EntityAppointment, "/appointments"))

	r.GET("/dentists", webHandler.Dentists)
	r.GET("/dentists/new", webFormHandler.DentistForm)
	r.POST("/dentists/new", webFormHandler.SubmitDentist)
	r.GET("/dentists/:id/edit", webFormHandler.DentistForm)
	r.POST("/dentists/:id/edit", webFormHandler.SubmitDentist)
	r.POST("/dentists/:id/actions/:action", webFormHandler.RowAction(domain.EntityDentist, "/dentists"))

	r.GET("/users", webHandler.Users)
	r.GET("/users/new", webFormHandler.UserForm)
	r.POST("/users/new", webFormHandler.SubmitUser)
	r.GET("/users/:id/edit", webFormHandler.UserForm)
	r.POST("/users/:id/edit", webFormHandler.SubmitUser)
	r.POST("/users/:id/actions/:action", webFormHandler.RowAction(domain.EntityUser, "/users"))

	r.POST("/notifications/:id/dismiss", webHandler.DismissNotification)

	r.NoRoute(webHandler.NotFound)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/options", appointmentHandler.Options)
		api.GET("/appointments/export", appointmentHandler.Export)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/appointments/:id/actions/:action", appointmentHandler.Action)

		// ------------------------------
		// DENTISTS
		// ------------------------------
		api.GET("/dentists", dentistHandler.List)
		api.GET("/dentists/options", dentistHandler.Options)
		api.GET("/dentists/export", dentistHandler.Export)
		api.GET("/dentists/defaults", dentistHandler.Defaults)
		api.GET("/dentists/:id/defaults", dentistHandler.Defaults)
		api.POST("/dentists", dentistHandler.Create)
		api.PUT("/dentists/:id", dentistHandler.Update)
		api.POST("/dentists/:id/actions/:action", dentistHandler.Action)

		// ------------------------------
		// USERS
		// ------------------------------
		api.GET("/users", userHandler.List)
		api.GET("/users/options", userHandler.Options)
		api.GET("/users/export", userHandler.Export)
		api.GET("/users/defaults", userHandler.Defaults)
		api.GET("/users/:id/defaults", userHandler.Defaults)
		api.POST("/users", userHandler.Create)
		api.PUT("/users/:id", userHandler.Update)
		api.POST("/users/:id/actions/:action", userHandler.Action)

		// ------------------------------
		// DASHBOARD & NOTIFICATIONS
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Summary)
		api.GET("/dashboard/chart", dashboardHandler.Chart)

		api.GET("/notifications", notificationHandler.List)
		api.DELETE("/notifications/:id", notificationHandler.Dismiss)
	}

	return nil
}
