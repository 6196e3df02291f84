// Package web holds the server-rendered pages: templates, the sidebar and
// the page envelope shared by every handler.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/BruksfildServices01/dental-admin/internal/dashboard"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

//go:embed templates/*.html
var templateFS embed.FS

// NavItem is one sidebar entry.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

var navigation = []NavItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Manage Users", Path: "/users"},
	{Label: "Appointments", Path: "/appointments"},
	{Label: "Dentist Management", Path: "/dentists"},
	{Label: "Patient Records", Path: "/patients"},
	{Label: "Reports", Path: "/reports"},
	{Label: "Notifications", Path: "/notifications"},
	{Label: "Settings", Path: "/settings"},
}

// Navigation returns the sidebar with the entry for path marked active.
// Nested paths such as /dentists/3/edit activate their section.
func Navigation(path string) []NavItem {
	out := make([]NavItem, len(navigation))
	for i, item := range navigation {
		if item.Path == "/" {
			item.Active = path == "/"
		} else {
			item.Active = path == item.Path || strings.HasPrefix(path, item.Path+"/")
		}
		out[i] = item
	}
	return out
}

// Page is the envelope every template receives.
type Page struct {
	Title     string
	Path      string
	Nav       []NavItem
	Toasts    []notify.Notification
	RequestID string
	Data      any
}

var funcs = template.FuncMap{
	"initials": models.Initials,
	"statusClass": func(status any) string {
		switch s := strings.ToLower(toString(status)); s {
		case "confirmed", "active":
			return "badge badge-success"
		case "pending":
			return "badge badge-warning"
		case "cancelled", "inactive":
			return "badge badge-muted"
		default:
			return "badge"
		}
	},
	"title": func(s any) string {
		str := toString(s)
		if str == "" {
			return str
		}
		return strings.ToUpper(str[:1]) + str[1:]
	},
	"field": func(errs map[string]string, name string) string {
		return errs[name]
	},
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, fmt.Errorf("dict: odd number of arguments")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			k, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
			}
			m[k] = kv[i+1]
		}
		return m, nil
	},
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	// tooltip is the hover text of a chart row
	"tooltip": func(p models.ChartPoint) string {
		return strings.Join(dashboard.Tooltip(true, p.Name, &p), " · ")
	},
	"percent": func(v, max int) int {
		if max <= 0 {
			return 0
		}
		return v * 100 / max
	},
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Templates parses every embedded page. Page templates are looked up by the
// name they define, for example "dentists" or "not_found".
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
