package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

func TestNavigationMarksSection(t *testing.T) {
	tests := []struct {
		path   string
		active string
	}{
		{"/", "Dashboard"},
		{"/dentists", "Dentist Management"},
		{"/dentists/3/edit", "Dentist Management"},
		{"/users/new", "Manage Users"},
		{"/reports", "Reports"},
		{"/nowhere", ""},
	}

	for _, tt := range tests {
		var active []string
		for _, item := range Navigation(tt.path) {
			if item.Active {
				active = append(active, item.Label)
			}
		}
		if strings.Join(active, ",") != tt.active {
			t.Errorf("Navigation(%q) active = %v, want %q", tt.path, active, tt.active)
		}
	}

	if n := len(Navigation("/")); n != 8 {
		t.Fatalf("sidebar has %d entries", n)
	}
}

func TestTemplatesRenderNotFoundWithToasts(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}

	for _, name := range []string{"dashboard", "appointments", "dentists", "users", "appointment_form", "dentist_form", "user_form", "not_found"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %q not defined", name)
		}
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "not_found", Page{
		Title:  "Page not found",
		Path:   "/missing",
		Nav:    Navigation("/missing"),
		Toasts: []notify.Notification{notify.Success("Dentist added successfully", "Dr. Jane Smith has been added to the system.")},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Oops! Page not found", "Return to Home", "Dentist added successfully", "Dentist Management"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestFuncs(t *testing.T) {
	statusClass := funcs["statusClass"].(func(any) string)
	if statusClass("confirmed") != "badge badge-success" || statusClass("cancelled") != "badge badge-muted" {
		t.Fatal("unexpected status classes")
	}
	title := funcs["title"].(func(any) string)
	if title("receptionist") != "Receptionist" || title("") != "" {
		t.Fatal("title")
	}
	tooltip := funcs["tooltip"].(func(models.ChartPoint) string)
	if got := tooltip(models.ChartPoint{Name: "Mar", Patients: 12, Appointments: 7}); got != "Mar · Patients: 12 · Appointments: 7" {
		t.Fatalf("tooltip = %q", got)
	}
	dict := funcs["dict"].(func(...any) (map[string]any, error))
	if _, err := dict("a"); err == nil {
		t.Fatal("odd dict accepted")
	}
}
