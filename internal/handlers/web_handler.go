package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/dashboard"
	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/listing"
	"github.com/BruksfildServices01/dental-admin/internal/middleware"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/lists"
	"github.com/BruksfildServices01/dental-admin/web"
)

// maxToasts is how many notifications the layout shows at once.
const maxToasts = 3

// ======================================================
// HANDLER
// ======================================================

type WebHandler struct {
	appointments *lists.ListAppointments
	dentists     *lists.ListDentists
	users        *lists.ListUsers
	dashboard    *dashboard.Service
	feed         notify.Feed
	loc          *time.Location
	log          *slog.Logger
}

func NewWebHandler(
	appointments *lists.ListAppointments,
	dentists *lists.ListDentists,
	users *lists.ListUsers,
	dashboardSvc *dashboard.Service,
	feed notify.Feed,
	loc *time.Location,
	log *slog.Logger,
) *WebHandler {
	if log == nil {
		log = slog.Default()
	}
	return &WebHandler{
		appointments: appointments,
		dentists:     dentists,
		users:        users,
		dashboard:    dashboardSvc,
		feed:         feed,
		loc:          loc,
		log:          log,
	}
}

// render wraps data in the layout envelope and writes the page.
func (h *WebHandler) render(c *gin.Context, status int, name, title string, data any) {
	toasts, err := h.feed.List(c.Request.Context())
	if err != nil {
		h.log.Warn("failed to load notifications", "error", err)
	}
	if len(toasts) > maxToasts {
		toasts = toasts[:maxToasts]
	}

	path := c.Request.URL.Path
	c.HTML(status, name, web.Page{
		Title:     title,
		Path:      path,
		Nav:       web.Navigation(path),
		Toasts:    toasts,
		RequestID: middleware.GetRequestID(c),
		Data:      data,
	})
}

func searchBox(action, placeholder, query string, status domain.StatusFilter, statuses ...string) gin.H {
	return gin.H{
		"Action":      action,
		"Placeholder": placeholder,
		"Query":       query,
		"Status":      string(status),
		"Statuses":    append([]string{domain.StatusAll}, statuses...),
	}
}

// ======================================================
// PAGES
// ======================================================

func (h *WebHandler) Dashboard(c *gin.Context) {
	s, err := h.dashboard.Summary(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		h.fail(c, err)
		return
	}

	chartMax := 0
	for _, p := range s.Chart.Points {
		chartMax = max(chartMax, p.Patients, p.Appointments)
	}

	h.render(c, http.StatusOK, "dashboard", "Dashboard", gin.H{
		"Summary":    s,
		"Timeframes": []domain.Timeframe{domain.TimeframeWeekly, domain.TimeframeMonthly, domain.TimeframeYearly},
		"ChartMax":   chartMax,
	})
}

func (h *WebHandler) Appointments(c *gin.Context) {
	query, status := filters(c)

	v, err := h.appointments.Execute(c.Request.Context(), query, status)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "appointments", "Appointments", gin.H{
		"Search": searchBox("/appointments", "Search appointments...", v.Query, v.Status,
			string(models.AppointmentConfirmed), string(models.AppointmentPending), string(models.AppointmentCancelled)),
		"Records": v.Records,
		"Empty":   v.Empty,
		"Pages":   listing.Pages(),
	})
}

func (h *WebHandler) Dentists(c *gin.Context) {
	query, status := filters(c)

	v, err := h.dentists.Execute(c.Request.Context(), query, status)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "dentists", "Dentist Management", gin.H{
		"Search": searchBox("/dentists", "Search dentists...", v.Query, v.Status,
			string(models.StatusActive), string(models.StatusInactive)),
		"Records": v.Records,
		"Empty":   v.Empty,
		"Pages":   listing.Pages(),
	})
}

func (h *WebHandler) Users(c *gin.Context) {
	query, status := filters(c)

	v, err := h.users.Execute(c.Request.Context(), query, status)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, "users", "Manage Users", gin.H{
		"Search": searchBox("/users", "Search users...", v.Query, v.Status,
			string(models.StatusActive), string(models.StatusInactive)),
		"Records": v.Records,
		"Empty":   v.Empty,
		"Pages":   listing.Pages(),
	})
}

// NotFound answers every unmatched route. API paths get JSON, everything
// else the not-found page.
func (h *WebHandler) NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	h.log.Warn("404: route not found", "path", path, "request_id", middleware.GetRequestID(c))

	if strings.HasPrefix(path, "/api/") {
		httperr.NotFound(c, "route_not_found", "Route not found.")
		return
	}
	h.render(c, http.StatusNotFound, "not_found", "Page not found", nil)
}

// DismissNotification closes a toast and returns to the page it was on.
func (h *WebHandler) DismissNotification(c *gin.Context) {
	if err := h.feed.Dismiss(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Debug("dismiss failed", "id", c.Param("id"), "error", err)
	}
	c.Redirect(http.StatusSeeOther, back(c, "/"))
}

func (h *WebHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	h.log.Error("page failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, "Something went wrong.")
}

// back returns the same-site page the request came from, or fallback.
func back(c *gin.Context, fallback string) string {
	ref, err := url.Parse(c.GetHeader("Referer"))
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") {
		return fallback
	}
	if ref.Host != "" && ref.Host != c.Request.Host {
		return fallback
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
