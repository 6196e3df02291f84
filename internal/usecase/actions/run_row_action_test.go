package actions

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/BruksfildServices01/dental-admin/internal/audit"
	"github.com/BruksfildServices01/dental-admin/internal/domain"
	"github.com/BruksfildServices01/dental-admin/internal/fixtures"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/infra/repository"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

type setup struct {
	repo  domain.Repository
	feed  *notify.MemoryFeed
	audit *recorder
	uc    *RunRowAction
}

func newSetup() *setup {
	s := &setup{
		repo:  repository.NewFixtureRepository(fixtures.Default()),
		feed:  notify.NewMemoryFeed(0),
		audit: &recorder{},
	}
	s.uc = NewRunRowAction(s.repo, s.feed, s.audit, nil)
	return s
}

func TestEditReturnsRecordWithoutNotification(t *testing.T) {
	s := newSetup()

	res, err := s.uc.Execute(context.Background(), domain.EntityDentist, "2", domain.ActionEdit)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := res.Record.(*models.Dentist)
	if !ok || d.Name != "Dr. Michael Chen" {
		t.Fatalf("record = %+v", res.Record)
	}
	if res.Notification != nil {
		t.Fatal("edit must not notify")
	}
	if list, _ := s.feed.List(context.Background()); len(list) != 0 {
		t.Fatal("feed not empty")
	}
	if len(s.audit.events) != 0 {
		t.Fatal("edit must not be logged")
	}
}

func TestDeleteNotifiesAndKeepsRecord(t *testing.T) {
	s := newSetup()
	ctx := context.Background()

	res, err := s.uc.Execute(ctx, domain.EntityDentist, "1", domain.ActionDelete)
	if err != nil {
		t.Fatal(err)
	}
	if res.Notification == nil || res.Notification.Title != "Dentist deleted successfully" ||
		res.Notification.Description != "The dentist has been removed from the system." {
		t.Fatalf("notification = %+v", res.Notification)
	}

	list, _ := s.repo.ListDentists(ctx)
	if len(list) != 5 || list[0].ID != "1" {
		t.Fatal("delete must not change the list")
	}
	if len(s.audit.events) != 1 || s.audit.events[0].Action != "dentist_deleted" || s.audit.events[0].EntityID != "1" {
		t.Fatalf("audit = %+v", s.audit.events)
	}
}

func TestStatusActions(t *testing.T) {
	tests := []struct {
		name    string
		entity  domain.Entity
		id      string
		action  domain.Action
		title   string
		wantErr string
	}{
		{"activate inactive dentist", domain.EntityDentist, "4", domain.ActionActivate, "Dentist activated successfully", ""},
		{"deactivate active dentist", domain.EntityDentist, "1", domain.ActionDeactivate, "Dentist deactivated successfully", ""},
		{"activate active dentist", domain.EntityDentist, "1", domain.ActionActivate, "", "invalid_state"},
		{"deactivate inactive user", domain.EntityUser, "3", domain.ActionDeactivate, "", "invalid_state"},
		{"deactivate active user", domain.EntityUser, "4", domain.ActionDeactivate, "User deactivated successfully", ""},
		{"cancel confirmed appointment", domain.EntityAppointment, "APT001", domain.ActionCancel, "Appointment cancelled successfully", ""},
		{"cancel cancelled appointment", domain.EntityAppointment, "APT004", domain.ActionCancel, "", "invalid_state"},
		{"unknown action", domain.EntityAppointment, "APT001", domain.ActionDelete, "", "unknown_action"},
		{"unknown entity", domain.Entity("patient"), "P001", domain.ActionEdit, "", "unknown_entity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSetup()
			res, err := s.uc.Execute(context.Background(), tt.entity, tt.id, tt.action)
			if tt.wantErr != "" {
				if !httperr.IsBusiness(err, tt.wantErr) {
					t.Fatalf("err = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if res.Notification == nil || res.Notification.Title != tt.title {
				t.Fatalf("notification = %+v", res.Notification)
			}
		})
	}
}

func TestUnknownRecord(t *testing.T) {
	s := newSetup()
	_, err := s.uc.Execute(context.Background(), domain.EntityUser, "99", domain.ActionDelete)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestViewAndRescheduleReturnAppointment(t *testing.T) {
	s := newSetup()
	for _, a := range []domain.Action{domain.ActionView, domain.ActionReschedule} {
		res, err := s.uc.Execute(context.Background(), domain.EntityAppointment, "APT004", a)
		if err != nil {
			t.Fatalf("%s: %v", a, err)
		}
		if ap := res.Record.(*models.Appointment); ap.PatientName != "Sophie Garcia" {
			t.Fatalf("%s record = %+v", a, ap)
		}
	}
}
