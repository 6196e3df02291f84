package domain

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Dashboard is the read model behind the summary page.
type Dashboard struct {
	Stats      []models.StatCard
	Weekly     []models.ChartPoint
	Monthly    []models.ChartPoint
	Yearly     []models.ChartPoint
	Activities []models.Activity
	Upcoming   []models.UpcomingAppointment
}

// Repository is read-only. Implementations return copies so callers can
// never alter the seeded datasets.
type Repository interface {
	// -------- Appointments --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// -------- Dentists --------
	ListDentists(ctx context.Context) ([]models.Dentist, error)
	GetDentist(ctx context.Context, id string) (*models.Dentist, error)

	// -------- Users --------
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)

	// -------- Form options --------
	Patients(ctx context.Context) ([]models.Option, error)
	DentistOptions(ctx context.Context) ([]models.Option, error)
	TreatmentTypes(ctx context.Context) ([]string, error)
	TimeSlots(ctx context.Context) ([]string, error)
	Specializations(ctx context.Context) ([]string, error)

	// -------- Dashboard --------
	Dashboard(ctx context.Context) (*Dashboard, error)
}
