package lists

import (
	"context"

	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/listing"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// Visible is the filtered view of a list together with the inputs that
// produced it.
type Visible[T any] struct {
	Records []T
	Query   string
	Status  domain.StatusFilter
	Empty   string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(ctx context.Context, query string, status domain.StatusFilter) (*Visible[models.Appointment], error) {
	all, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return visible(all, query, status, listing.Appointments), nil
}

type ListDentists struct {
	repo domain.Repository
}

func NewListDentists(repo domain.Repository) *ListDentists {
	return &ListDentists{repo: repo}
}

func (uc *ListDentists) Execute(ctx context.Context, query string, status domain.StatusFilter) (*Visible[models.Dentist], error) {
	all, err := uc.repo.ListDentists(ctx)
	if err != nil {
		return nil, err
	}
	return visible(all, query, status, listing.Dentists), nil
}

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, query string, status domain.StatusFilter) (*Visible[models.User], error) {
	all, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return visible(all, query, status, listing.Users), nil
}

func visible[T any](all []T, query string, status domain.StatusFilter, schema listing.Schema[T]) *Visible[T] {
	if status == "" {
		status = domain.StatusAll
	}
	return &Visible[T]{
		Records: listing.Filter(all, query, status, schema),
		Query:   query,
		Status:  status,
		Empty:   schema.Empty,
	}
}
