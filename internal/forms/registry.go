package forms

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
)

// Registry keeps one form instance per dialog so that the submitting flag
// spans requests: a second submit of the same dialog while the first is
// still pending is rejected with ErrSubmitting.
type Registry struct {
	repo domain.Repository
	deps Deps
	loc  *time.Location
	now  func() time.Time

	mu          sync.Mutex
	appointment *AppointmentForm
	dentists    map[string]*DentistForm
	users       map[string]*UserForm
}

func NewRegistry(repo domain.Repository, deps Deps, loc *time.Location) *Registry {
	return &Registry{
		repo:     repo,
		deps:     deps,
		loc:      loc,
		now:      time.Now,
		dentists: make(map[string]*DentistForm),
		users:    make(map[string]*UserForm),
	}
}

// WithClock replaces the clock used by the past-date rule.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

func (r *Registry) Appointment(ctx context.Context) (*AppointmentForm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.appointment != nil {
		return r.appointment, nil
	}

	opts := AppointmentOptions{Location: r.loc, Now: r.now}
	var err error
	if opts.Patients, err = r.repo.Patients(ctx); err != nil {
		return nil, err
	}
	if opts.Dentists, err = r.repo.DentistOptions(ctx); err != nil {
		return nil, err
	}
	if opts.TreatmentTypes, err = r.repo.TreatmentTypes(ctx); err != nil {
		return nil, err
	}
	if opts.TimeSlots, err = r.repo.TimeSlots(ctx); err != nil {
		return nil, err
	}

	r.appointment = NewAppointmentForm(opts, r.deps, r.callbacks("appointment", ""))
	return r.appointment, nil
}

// Dentist returns the add dialog for an empty id and the edit dialog
// otherwise. An unknown id yields domain.ErrNotFound.
func (r *Registry) Dentist(ctx context.Context, id string) (*DentistForm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.dentists[id]; ok {
		return f, nil
	}

	specializations, err := r.repo.Specializations(ctx)
	if err != nil {
		return nil, err
	}

	f := NewDentistForm(nil, specializations, r.deps, r.callbacks("dentist", id))
	if id != "" {
		existing, err := r.repo.GetDentist(ctx, id)
		if err != nil {
			return nil, err
		}
		f = NewDentistForm(existing, specializations, r.deps, r.callbacks("dentist", id))
	}

	r.dentists[id] = f
	return f, nil
}

// User mirrors Dentist for the user dialog, which saves without delay.
func (r *Registry) User(ctx context.Context, id string) (*UserForm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.users[id]; ok {
		return f, nil
	}

	deps := r.deps
	deps.Latency = UserLatency

	f := NewUserForm(nil, deps, r.callbacks("user", id))
	if id != "" {
		existing, err := r.repo.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		f = NewUserForm(existing, deps, r.callbacks("user", id))
	}

	r.users[id] = f
	return f, nil
}

func (r *Registry) callbacks(entity, id string) Callbacks {
	log := r.deps.Logger
	if log == nil {
		return Callbacks{}
	}
	return Callbacks{
		OnSuccess: func() { log.Debug("dialog closed after save", "entity", entity, "id", id) },
		OnCancel:  func() { log.Debug("dialog dismissed", "entity", entity, "id", id) },
	}
}
