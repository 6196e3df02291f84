package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/audit"
	"github.com/BruksfildServices01/dental-admin/internal/export"
	"github.com/BruksfildServices01/dental-admin/internal/fixtures"
	"github.com/BruksfildServices01/dental-admin/internal/infra/repository"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/observability"
)

type testServer struct {
	engine     *gin.Engine
	feed       *notify.MemoryFeed
	recorder   *audit.Recorder
	dispatcher *audit.Dispatcher
}

func newTestServer(t *testing.T, extra ...gin.HandlerFunc) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := audit.NewRecorder(0)
	dispatcher := audit.NewDispatcher(rec, logger)
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	s := &testServer{
		engine:     gin.New(),
		feed:       notify.NewMemoryFeed(0),
		recorder:   rec,
		dispatcher: dispatcher,
	}
	s.engine.Use(extra...)

	err := RegisterRoutes(s.engine, Deps{
		Repo:        repository.NewFixtureRepository(fixtures.Default()),
		Feed:        s.feed,
		Audit:       dispatcher,
		AuditLog:    rec,
		Metrics:     observability.NewMetrics(logger),
		Logger:      logger,
		Location:    time.UTC,
		SubmitDelay: 5 * time.Millisecond,
		Clock: func() time.Time {
			return time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
		},
	})
	if err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	return s
}

func (s *testServer) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, path string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}
	return s.do(method, path, body, "application/json")
}

func (s *testServer) form(path string, values url.Values) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, path, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// ======================================================
// API
// ======================================================

func TestListAppointmentsFiltered(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodGet, "/api/appointments?query=wilson&status=confirmed", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
		Total  int    `json:"total"`
		Query  string `json:"query"`
		Status string `json:"status"`
	}
	decode(t, w, &resp)

	if resp.Total != 2 || resp.Data[0].ID != "APT001" || resp.Data[1].ID != "APT005" {
		t.Fatalf("unexpected list: %+v", resp)
	}
	if resp.Query != "wilson" || resp.Status != "confirmed" {
		t.Fatalf("filters not echoed: %+v", resp)
	}
}

func TestCreateDentistValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodPost, "/api/dentists", map[string]any{
		"name":           "Al",
		"email":          "al@clinic.com",
		"phone":          "555-0101",
		"specialization": "Orthodontist",
		"experience":     "4",
		"availability":   "Mon-Fri",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decode(t, w, &resp)
	if resp.Fields["name"] == "" {
		t.Fatalf("expected a name error, got %+v", resp.Fields)
	}
	if len(resp.Fields) != 1 {
		t.Fatalf("only the name should fail, got %+v", resp.Fields)
	}
}

func TestCreateAppointment(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodPost, "/api/appointments", map[string]any{
		"patientId":       "P001",
		"dentistId":       "D001",
		"appointmentDate": "2026-10-20",
		"appointmentTime": "9:00 AM",
		"treatmentType":   "Dental Checkup",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Notification notify.Notification `json:"notification"`
	}
	decode(t, w, &resp)
	if !strings.Contains(resp.Notification.Description, "John Cooper") {
		t.Fatalf("description = %q", resp.Notification.Description)
	}

	list, _ := s.feed.List(context.Background())
	if len(list) != 1 || list[0].Kind != notify.KindSuccess {
		t.Fatalf("feed = %+v", list)
	}
}

func TestCreateAppointmentInPast(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodPost, "/api/appointments", map[string]any{
		"patientId":       "P001",
		"dentistId":       "D001",
		"appointmentDate": "2026-10-18",
		"appointmentTime": "9:00 AM",
		"treatmentType":   "Dental Checkup",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Appointment date cannot be in the past") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestDentistDefaults(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodGet, "/api/dentists/99/defaults", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}

	w = s.json(http.MethodGet, "/api/dentists/4/defaults", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Mode   string `json:"mode"`
		Values struct {
			Name     string `json:"name"`
			IsActive bool   `json:"isActive"`
		} `json:"values"`
	}
	decode(t, w, &resp)
	if resp.Mode != "edit" || resp.Values.Name != "Dr. James Wilson" || resp.Values.IsActive {
		t.Fatalf("defaults = %+v", resp)
	}
}

func TestRowActions(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"delete dentist", "/api/dentists/1/actions/delete", http.StatusOK},
		{"activate active dentist", "/api/dentists/1/actions/activate", http.StatusConflict},
		{"deactivate inactive user", "/api/users/3/actions/deactivate", http.StatusConflict},
		{"unknown action", "/api/dentists/1/actions/promote", http.StatusBadRequest},
		{"unknown record", "/api/users/99/actions/delete", http.StatusNotFound},
		{"cancel appointment", "/api/appointments/APT002/actions/cancel", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.json(http.MethodPost, tt.path, nil)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.status, w.Body.String())
			}
		})
	}

	// actions leave the list untouched
	w := s.json(http.MethodGet, "/api/dentists", nil)
	var resp struct {
		Total int `json:"total"`
	}
	decode(t, w, &resp)
	if resp.Total != 5 {
		t.Fatalf("total = %d, want 5", resp.Total)
	}
}

func TestDeleteActionNotification(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodPost, "/api/dentists/2/actions/delete", nil)
	var resp struct {
		Notification notify.Notification `json:"notification"`
	}
	decode(t, w, &resp)
	if resp.Notification.Title != "Dentist deleted successfully" {
		t.Fatalf("title = %q", resp.Notification.Title)
	}
}

func TestAuditLogs(t *testing.T) {
	s := newTestServer(t)

	s.json(http.MethodPost, "/api/dentists/2/actions/delete", nil)
	s.json(http.MethodPost, "/api/users/1/actions/deactivate", nil)

	// drain the queue before reading
	if err := s.dispatcher.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	w := s.json(http.MethodGet, "/api/audit-logs?action=dentist_deleted", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Total int `json:"total"`
		Logs  []struct {
			Action   string `json:"action"`
			EntityID string `json:"entity_id"`
		} `json:"logs"`
	}
	decode(t, w, &resp)
	if resp.Total != 1 || resp.Logs[0].EntityID != "2" {
		t.Fatalf("logs = %+v", resp)
	}
}

func TestExport(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodGet, "/api/users/export?status=active", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != export.ContentType {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "users") {
		t.Fatalf("disposition = %q", w.Header().Get("Content-Disposition"))
	}
}

func TestNotificationsDismiss(t *testing.T) {
	s := newTestServer(t)

	s.json(http.MethodPost, "/api/users/2/actions/delete", nil)

	var resp struct {
		Data  []notify.Notification `json:"data"`
		Total int                   `json:"total"`
	}
	decode(t, s.json(http.MethodGet, "/api/notifications", nil), &resp)
	if resp.Total != 1 {
		t.Fatalf("total = %d", resp.Total)
	}

	w := s.json(http.MethodDelete, "/api/notifications/"+resp.Data[0].ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	w = s.json(http.MethodDelete, "/api/notifications/"+resp.Data[0].ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second dismiss status = %d", w.Code)
	}
}

func TestDashboardChart(t *testing.T) {
	s := newTestServer(t)

	w := s.json(http.MethodGet, "/api/dashboard/chart?timeframe=weekly", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "weekly") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

// ======================================================
// WEB
// ======================================================

func TestPagesRender(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Recent Activity"},
		{"/?timeframe=weekly", "Appointments: "},
		{"/appointments", "APT001"},
		{"/dentists", "Dr. Sarah Johnson"},
		{"/users", "Jennifer Brown"},
		{"/appointments/new", "Schedule New Appointment"},
		{"/dentists/new", "Add New Dentist"},
		{"/dentists/2/edit", "Edit Dentist"},
		{"/users/new", "Add New User"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.do(http.MethodGet, tt.path, nil, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Fatalf("%s missing %q", tt.path, tt.want)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/billing/invoices", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Oops! Page not found") {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/unknown", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("content type = %q", w.Header().Get("Content-Type"))
	}

	w = s.do(http.MethodGet, "/dentists/99/edit", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown dentist status = %d", w.Code)
	}
}

func TestWebDentistForm(t *testing.T) {
	s := newTestServer(t)

	w := s.form("/dentists/new", url.Values{"cancel": {"1"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dentists" {
		t.Fatalf("cancel: status = %d, location = %q", w.Code, w.Header().Get("Location"))
	}

	w = s.form("/dentists/new", url.Values{"name": {"Al"}})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid: status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Al") {
		t.Fatalf("submitted values should be kept")
	}

	w = s.form("/dentists/new", url.Values{
		"name":           {"Dr. Alan Park"},
		"email":          {"alan.park@dentalcare.com"},
		"phone":          {"+1 (555) 201-1000"},
		"specialization": {"Orthodontist"},
		"experience":     {"7"},
		"availability":   {"Mon-Fri"},
		"isActive":       {"true"},
	})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dentists" {
		t.Fatalf("submit: status = %d, location = %q", w.Code, w.Header().Get("Location"))
	}
}

func TestWebUserFormMissingFields(t *testing.T) {
	s := newTestServer(t)

	w := s.form("/users/new", url.Values{"name": {"Ana"}})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please fill in all required fields.") {
		t.Fatalf("body misses the form error")
	}

	list, _ := s.feed.List(context.Background())
	if len(list) != 1 || list[0].Kind != notify.KindError {
		t.Fatalf("feed = %+v", list)
	}
}

func TestWebRowActions(t *testing.T) {
	s := newTestServer(t)

	w := s.form("/dentists/3/actions/edit", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dentists/3/edit" {
		t.Fatalf("edit: status = %d, location = %q", w.Code, w.Header().Get("Location"))
	}

	w = s.form("/dentists/1/actions/activate", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dentists" {
		t.Fatalf("activate: status = %d, location = %q", w.Code, w.Header().Get("Location"))
	}
	list, _ := s.feed.List(context.Background())
	if len(list) != 1 || list[0].Kind != notify.KindError {
		t.Fatalf("feed = %+v", list)
	}
}

func TestWebFormMalformedBody(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		path   string
		values url.Values
	}{
		{"/dentists/new", url.Values{"name": {"Dr. Alan Park"}, "isActive": {"maybe"}}},
		{"/users/new", url.Values{"name": {"Ana"}, "isActive": {"maybe"}}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.form(tt.path, tt.values)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", w.Code)
			}
			if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
				t.Fatalf("content type = %q", w.Header().Get("Content-Type"))
			}
			if !strings.Contains(w.Body.String(), "The form could not be read.") {
				t.Fatalf("body misses the form message")
			}
		})
	}
}

func TestWebSubmitClientGone(t *testing.T) {
	errs := make(chan []string, 1)
	s := newTestServer(t, func(c *gin.Context) {
		c.Next()
		if c.Request.Method == http.MethodPost {
			errs <- c.Errors.Errors()
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	body := url.Values{
		"name":           {"Dr. Alan Park"},
		"email":          {"alan.park@dentalcare.com"},
		"phone":          {"+1 (555) 201-1000"},
		"specialization": {"Orthodontist"},
		"experience":     {"7"},
		"availability":   {"Mon-Fri"},
	}
	req := httptest.NewRequest(http.MethodPost, "/dentists/new", strings.NewReader(body.Encode())).WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	if loc := w.Header().Get("Location"); loc != "" {
		t.Fatalf("no redirect expected, got %q", loc)
	}
	if got := <-errs; len(got) != 1 || !strings.Contains(got[0], context.Canceled.Error()) {
		t.Fatalf("recorded errors = %v", got)
	}

	// the save still completes
	deadline := time.Now().Add(time.Second)
	for {
		list, _ := s.feed.List(context.Background())
		if len(list) == 1 && list[0].Kind == notify.KindSuccess {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("feed = %+v", list)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
