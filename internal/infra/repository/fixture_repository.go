package repository

import (
	"context"
	"slices"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/fixtures"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// FixtureRepository serves the seeded datasets. It never writes: every
// method hands out copies.
type FixtureRepository struct {
	seed *fixtures.Seed
}

func NewFixtureRepository(seed *fixtures.Seed) *FixtureRepository {
	if seed == nil {
		seed = fixtures.Default()
	}
	return &FixtureRepository{seed: seed}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *FixtureRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return slices.Clone(r.seed.Appointments), ctx.Err()
}

func (r *FixtureRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return find(ctx, r.seed.Appointments, func(a models.Appointment) bool { return a.ID == id })
}

// --------------------------------------------------
// Dentists
// --------------------------------------------------

func (r *FixtureRepository) ListDentists(ctx context.Context) ([]models.Dentist, error) {
	return slices.Clone(r.seed.Dentists), ctx.Err()
}

func (r *FixtureRepository) GetDentist(ctx context.Context, id string) (*models.Dentist, error) {
	return find(ctx, r.seed.Dentists, func(d models.Dentist) bool { return d.ID == id })
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *FixtureRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return slices.Clone(r.seed.Users), ctx.Err()
}

func (r *FixtureRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	return find(ctx, r.seed.Users, func(u models.User) bool { return u.ID == id })
}

// --------------------------------------------------
// Form options
// --------------------------------------------------

func (r *FixtureRepository) Patients(ctx context.Context) ([]models.Option, error) {
	return slices.Clone(r.seed.Patients), ctx.Err()
}

func (r *FixtureRepository) DentistOptions(ctx context.Context) ([]models.Option, error) {
	return slices.Clone(r.seed.DentistOptions), ctx.Err()
}

func (r *FixtureRepository) TreatmentTypes(ctx context.Context) ([]string, error) {
	return slices.Clone(r.seed.TreatmentTypes), ctx.Err()
}

func (r *FixtureRepository) TimeSlots(ctx context.Context) ([]string, error) {
	return slices.Clone(r.seed.TimeSlots), ctx.Err()
}

func (r *FixtureRepository) Specializations(ctx context.Context) ([]string, error) {
	return slices.Clone(r.seed.Specializations), ctx.Err()
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *FixtureRepository) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &domain.Dashboard{
		Stats:      cloneStats(r.seed.Stats),
		Weekly:     slices.Clone(r.seed.Chart.Weekly),
		Monthly:    slices.Clone(r.seed.Chart.Monthly),
		Yearly:     slices.Clone(r.seed.Chart.Yearly),
		Activities: slices.Clone(r.seed.Activities),
		Upcoming:   slices.Clone(r.seed.Upcoming),
	}, nil
}

func cloneStats(in []models.StatCard) []models.StatCard {
	out := make([]models.StatCard, len(in))
	for i, s := range in {
		out[i] = s
		if s.Change != nil {
			change := *s.Change
			out[i].Change = &change
		}
	}
	return out
}

func find[T any](ctx context.Context, records []T, match func(T) bool) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, rec := range records {
		if match(rec) {
			found := rec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Compile-time check
var _ domain.Repository = (*FixtureRepository)(nil)
