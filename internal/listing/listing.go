// Package listing derives the visible subset of a record collection from a
// free-text query and a categorical status filter.
package listing

import (
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// Schema names the searchable fields and the status field of a record type.
type Schema[T any] struct {
	Fields func(T) []string
	Status func(T) string
	Empty  string
}

// Filter returns the records whose searchable fields contain query as a
// case-insensitive substring and whose status passes the filter. The source
// slice is never modified and order is preserved.
func Filter[T any](records []T, query string, status domain.StatusFilter, schema Schema[T]) []T {
	needle := strings.ToLower(query)

	out := make([]T, 0, len(records))
	for _, r := range records {
		if !status.Matches(schema.Status(r)) {
			continue
		}
		if needle != "" && !containsAny(schema.Fields(r), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsAny(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

var Appointments = Schema[models.Appointment]{
	Fields: func(a models.Appointment) []string {
		return []string{a.PatientName, a.DentistName, a.TreatmentType, a.ID}
	},
	Status: func(a models.Appointment) string { return string(a.Status) },
	Empty:  "No appointments found",
}

var Dentists = Schema[models.Dentist]{
	Fields: func(d models.Dentist) []string {
		return []string{d.Name, d.Email, d.Specialization}
	},
	Status: func(d models.Dentist) string { return string(d.Status) },
	Empty:  "No dentists found.",
}

var Users = Schema[models.User]{
	Fields: func(u models.User) []string {
		return []string{u.Name, u.Email, string(u.Role)}
	},
	Status: func(u models.User) string { return string(u.Status) },
	Empty:  "No users found.",
}
